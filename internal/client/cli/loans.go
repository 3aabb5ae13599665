package cli

import (
	"context"
	"fmt"
)

// Loans lists the reader's borrow records, newest page first.
func (a *App) Loans(ctx context.Context) error {
	p, err := a.borrows.MyLoans(ctx, 0)
	if err != nil {
		return err
	}
	if len(p.Content) == 0 {
		printlnFn("No loans.")
		return nil
	}
	for _, r := range p.Content {
		line := fmt.Sprintf("#%-5d %-40s %-10s due %s", r.ID, r.BookTitle, r.Status, r.DueDate)
		if r.ReturnedAt != "" {
			line = fmt.Sprintf("#%-5d %-40s %-10s returned %s", r.ID, r.BookTitle, r.Status, r.ReturnedAt)
		}
		printlnFn(line)
	}
	return nil
}

// Requests lists the reader's borrow requests.
func (a *App) Requests(ctx context.Context) error {
	p, err := a.borrows.MyRequests(ctx, 0)
	if err != nil {
		return err
	}
	if len(p.Content) == 0 {
		printlnFn("No borrow requests.")
		return nil
	}
	for _, r := range p.Content {
		printlnFn(fmt.Sprintf("#%-5d %-40s %-10s requested %s", r.ID, r.BookTitle, r.Status, r.RequestedAt))
	}
	return nil
}

// ReturnBook returns a borrowed book by loan id.
func (a *App) ReturnBook(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn("Usage: return <loan id>")
		return nil
	}

	r, err := a.borrows.Return(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Returned %q.", r.BookTitle))
	if r.CreditsEarned > 0 {
		printlnFn(fmt.Sprintf("You earned %d credit(s).", r.CreditsEarned))
	}
	return nil
}

// Fines lists the reader's fines.
func (a *App) Fines(ctx context.Context) error {
	p, err := a.borrows.MyFines(ctx, 0)
	if err != nil {
		return err
	}
	if len(p.Content) == 0 {
		printlnFn("No fines.")
		return nil
	}
	for _, f := range p.Content {
		printlnFn(fmt.Sprintf("#%-5d %-40s %-8s %.2f (%d day(s) overdue)", f.ID, f.BookTitle, f.Status, f.Amount, f.OverdueDays))
	}
	return nil
}

// PayFine pays one fine by id.
func (a *App) PayFine(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn("Usage: payfine <fine id>")
		return nil
	}

	f, err := a.borrows.PayFine(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Fine #%d paid (%.2f).", f.ID, f.Amount))
	return nil
}
