package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dastas/libris-core/internal/auth"
	"github.com/dastas/libris-core/internal/catalog"
)

// demoPassword is shared by all demo accounts. Demo data is for local
// evaluation only, never production.
const demoPassword = "changeme123"

func init() {
	rootCmd.AddCommand(seedDemoCmd)
}

var seedDemoCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Seed demo accounts and a starter catalogue",
	Long: `Seed one account per role and a handful of books for local evaluation.

Accounts (password "` + demoPassword + `" for all):
  dastas   admin      dastas@libris.local
  john     librarian  john@libris.local
  prueba   reader     prueba@libris.local

The librarian owns the seeded books. Safe to re-run: existing emails
are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		hash, err := auth.HashPassword(demoPassword)
		if err != nil {
			return fmt.Errorf("hashing demo password: %w", err)
		}

		demoUsers := []auth.User{
			{Username: "dastas", Email: "dastas@libris.local", Role: auth.RoleAdmin},
			{Username: "john", Email: "john@libris.local", Role: auth.RoleLibrarian},
			{Username: "prueba", Email: "prueba@libris.local", Role: auth.RoleReader},
		}

		var librarianID int64
		for i := range demoUsers {
			user := &demoUsers[i]
			user.PasswordHash = hash

			created, err := createIfMissing(ctx, user)
			if err != nil {
				return err
			}
			if user.Role == auth.RoleLibrarian {
				librarianID = user.ID
			}
			if created {
				fmt.Printf("Created %s account %q (id %d)\n", user.Role, user.Username, user.ID)
			} else {
				fmt.Printf("Account %q already exists, skipped\n", user.Username)
			}
		}

		count, err := bookRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting books: %w", err)
		}
		if count > 0 {
			fmt.Printf("Catalogue already has %d books, skipping book seed\n", count)
			return nil
		}

		books := demoBooks(librarianID)
		for i := range books {
			if err := bookRepo.Create(ctx, &books[i]); err != nil {
				return fmt.Errorf("creating book %q: %w", books[i].Title, err)
			}
		}
		fmt.Printf("Seeded %d books owned by librarian (id %d)\n", len(books), librarianID)

		return nil
	},
}

// createIfMissing creates the user unless their email is already taken.
// When the account exists, the user struct is filled from the database.
func createIfMissing(ctx context.Context, user *auth.User) (bool, error) {
	existing, err := userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		*user = *existing
		return false, nil
	}

	if createErr := userRepo.Create(ctx, user); createErr != nil {
		return false, fmt.Errorf("creating user %q: %w", user.Username, createErr)
	}
	return true, nil
}

// demoBooks returns the starter catalogue, all owned by the librarian.
func demoBooks(ownerID int64) []catalog.Book {
	return []catalog.Book{
		{
			Title:           "Cien años de soledad",
			Author:          "Gabriel García Márquez",
			Category:        "Fiction",
			Status:          catalog.StatusAvailable,
			ISBN:            "978-0060883287",
			PublicationYear: 1967,
			OwnerID:         &ownerID,
		},
		{
			Title:           "The Go Programming Language",
			Author:          "Alan A. A. Donovan",
			Category:        "Technology",
			Status:          catalog.StatusAvailable,
			ISBN:            "978-0134190440",
			PublicationYear: 2015,
			OwnerID:         &ownerID,
		},
		{
			Title:           "Don Quijote de la Mancha",
			Author:          "Miguel de Cervantes",
			Category:        "Fiction",
			Status:          catalog.StatusBorrowed,
			ISBN:            "978-8420412146",
			PublicationYear: 1605,
			OwnerID:         &ownerID,
		},
	}
}
