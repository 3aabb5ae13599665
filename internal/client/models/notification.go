package models

type NotificationType string

const (
	NotifyBorrowApproved       NotificationType = "BORROW_REQUEST_APPROVED"
	NotifyBorrowDeclined       NotificationType = "BORROW_REQUEST_DECLINED"
	NotifyBookDueReminder      NotificationType = "BOOK_DUE_REMINDER"
	NotifyBookOverdue          NotificationType = "BOOK_OVERDUE"
	NotifyFineGenerated        NotificationType = "FINE_GENERATED"
	NotifySubscriptionExpiring NotificationType = "SUBSCRIPTION_EXPIRING"
	NotifyPaymentSuccessful    NotificationType = "PAYMENT_SUCCESSFUL"
	NotifyPaymentFailed        NotificationType = "PAYMENT_FAILED"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt string           `json:"createdAt"`
}

// UnreadCount is the envelope of GET /notifications/unread-count.
type UnreadCount struct {
	Count int64 `json:"count"`
}
