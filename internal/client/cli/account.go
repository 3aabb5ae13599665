package cli

import (
	"context"
	"fmt"
)

// Notifications lists the first page of notifications and refreshes the
// unread badge.
func (a *App) Notifications(ctx context.Context) error {
	p, err := a.notifications.List(ctx, 0)
	if err != nil {
		return err
	}
	if len(p.Content) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	for _, n := range p.Content {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s #%-5d %-25s %s", marker, n.ID, n.Type, n.Title))
	}
	if unread, err := a.notifications.RefreshUnread(ctx); err == nil {
		printlnFn(fmt.Sprintf("%d unread.", unread))
	}
	return nil
}

// MarkRead marks one notification read.
func (a *App) MarkRead(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn("Usage: read <notification id>")
		return nil
	}
	if err := a.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	printlnFn("Marked as read.")
	return nil
}

// Plans lists the purchasable subscription tiers.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.subscriptions.Plans(ctx)
	if err != nil {
		return err
	}
	for _, p := range plans {
		printlnFn(fmt.Sprintf("%-10s %-15s %d book(s), %d days, %.2f/day late, %.2f", p.Type, p.Name, p.BookLimit, p.DurationDays, p.DailyFineAmount, p.Price))
	}
	return nil
}

// MySubscription shows the active subscription.
func (a *App) MySubscription(ctx context.Context) error {
	s, err := a.subscriptions.Current(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s subscription, %d book(s) at a time", s.Type, s.BookLimit))
	printlnFn(fmt.Sprintf("Valid %s to %s", s.StartDate, s.EndDate))
	return nil
}
