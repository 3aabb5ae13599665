package models

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestDeclined RequestStatus = "DECLINED"
)

type BorrowStatus string

const (
	BorrowActive   BorrowStatus = "ACTIVE"
	BorrowReturned BorrowStatus = "RETURNED"
	BorrowOverdue  BorrowStatus = "OVERDUE"
)

type FineStatus string

const (
	FinePending FineStatus = "PENDING"
	FinePaid    FineStatus = "PAID"
	FineWaived  FineStatus = "WAIVED"
)

// BorrowRequest is a reader's pending/reviewed request to borrow a book.
type BorrowRequest struct {
	ID          int64         `json:"id"`
	ReaderID    int64         `json:"readerId"`
	ReaderName  string        `json:"readerName"`
	BookID      int64         `json:"bookId"`
	BookTitle   string        `json:"bookTitle"`
	BookAuthor  string        `json:"bookAuthor"`
	Status      RequestStatus `json:"status"`
	RequestedAt string        `json:"requestedAt"`
	ReviewedAt  string        `json:"reviewedAt,omitempty"`
	ReviewNotes string        `json:"reviewNotes,omitempty"`
}

// BorrowRecord is an approved loan with its due date and return state.
type BorrowRecord struct {
	ID            int64        `json:"id"`
	ReaderID      int64        `json:"readerId"`
	BookID        int64        `json:"bookId"`
	BookTitle     string       `json:"bookTitle"`
	BookAuthor    string       `json:"bookAuthor"`
	BorrowedAt    string       `json:"borrowedAt"`
	DueDate       string       `json:"dueDate"`
	ReturnedAt    string       `json:"returnedAt,omitempty"`
	Status        BorrowStatus `json:"status"`
	UsedCredit    bool         `json:"usedCredit"`
	CreditsEarned int64        `json:"creditsEarned"`
}

type Fine struct {
	ID             int64      `json:"id"`
	ReaderID       int64      `json:"readerId"`
	BorrowRecordID int64      `json:"borrowRecordId"`
	BookTitle      string     `json:"bookTitle"`
	Amount         float64    `json:"amount"`
	OverdueDays    int        `json:"overdueDays"`
	Status         FineStatus `json:"status"`
	Description    string     `json:"description"`
	CreatedAt      string     `json:"createdAt"`
	PaidAt         string     `json:"paidAt,omitempty"`
}

type CreateBorrowRequestRequest struct {
	BookID int64 `json:"bookId"`
}
