package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/librivault/librivault-cli/internal/client/models"
)

// Books lists a catalog page. "books" shows the first page, "books 2" the
// third (pages are zero-based on the wire, one-based on screen).
func (a *App) Books(ctx context.Context, args []string) error {
	page := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			printlnFn("Usage: books [page]")
			return nil
		}
		page = n - 1
	}

	result, err := a.books.List(ctx, page)
	if err != nil {
		return err
	}
	printBookPage(result)
	return nil
}

// ShowBook prints one book in full.
func (a *App) ShowBook(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn("Usage: book <id>")
		return nil
	}

	b, err := a.books.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s — %s", b.ID, b.Title, b.Author))
	printlnFn(fmt.Sprintf("Category: %s, ISBN: %s", b.CategoryName, b.ISBN))
	printlnFn(fmt.Sprintf("Available: %d of %d", b.AvailableCopies, b.TotalCopies))
	if b.Description != "" {
		printlnFn(b.Description)
	}
	return nil
}

// SearchBooks prompts for search terms and runs a catalog search. Empty
// answers leave the corresponding filter unset.
func (a *App) SearchBooks(ctx context.Context) error {
	query, err := a.promptText("Search text (empty to skip)")
	if err != nil {
		return err
	}
	author, err := a.promptText("Author (empty to skip)")
	if err != nil {
		return err
	}
	category, err := a.promptText("Category id (empty to skip)")
	if err != nil {
		return err
	}

	params := models.BookSearchParams{Query: query, Author: author}
	if category != "" {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			printlnFn("Category id must be a number.")
			return nil
		}
		params.CategoryID = id
	}

	result, err := a.books.Search(ctx, params)
	if err != nil {
		return err
	}
	printBookPage(result)
	return nil
}

// Borrow files a borrow request for a book.
func (a *App) Borrow(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn("Usage: borrow <book id>")
		return nil
	}

	req, err := a.borrows.RequestBook(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Request #%d for %q is %s.", req.ID, req.BookTitle, req.Status))
	return nil
}

func printBookPage(p *models.Paged[models.Book]) {
	if len(p.Content) == 0 {
		printlnFn("No books found.")
		return
	}
	for _, b := range p.Content {
		printlnFn(fmt.Sprintf("#%-5d %-40s %-25s available: %d", b.ID, b.Title, b.Author, b.AvailableCopies))
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d books total)", p.Number+1, p.TotalPages, p.TotalElements))
}
