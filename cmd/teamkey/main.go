// Command teamkey provisions and inspects team registration keys. It
// operates on the dashboard database directly and is meant to be run
// on the host, not exposed over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/nextnukkad/team-dashboard/pkg/idx"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	dbFile := os.Getenv("DATABASE_FILE")
	if dbFile == "" {
		dbFile = "dashboard.db"
	}

	st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFile))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "mint":
		err = mint(ctx, st, os.Args[2:])
	case "list":
		err = list(ctx, st)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: teamkey <mint|list> [flags]")
	fmt.Fprintln(os.Stderr, "  mint -code KEY -uses N [-expires 720h]")
	fmt.Fprintln(os.Stderr, "  list")
}

func mint(ctx context.Context, st *sqlite.Store, args []string) error {
	fs := flag.NewFlagSet("mint", flag.ExitOnError)
	code := fs.String("code", "", "key code handed to new team members")
	uses := fs.Int("uses", 1, "how many signups the key admits")
	expires := fs.Duration("expires", 0, "optional validity window (0 = never expires)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *code == "" {
		return fmt.Errorf("mint: -code is required")
	}
	if *uses < 1 {
		return fmt.Errorf("mint: -uses must be at least 1")
	}

	key := domain.TeamKey{
		ID:       idx.New().String(),
		KeyCode:  *code,
		IsActive: true,
		MaxUses:  *uses,
	}
	if *expires > 0 {
		at := time.Now().UTC().Add(*expires)
		key.ExpiresAt = &at
	}

	if err := st.TeamKeys().CreateKey(ctx, key); err != nil {
		return fmt.Errorf("mint: %w", err)
	}

	fmt.Printf("minted %s (%d uses)\n", key.KeyCode, key.MaxUses)
	return nil
}

func list(ctx context.Context, st *sqlite.Store) error {
	keys, err := st.TeamKeys().ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tACTIVE\tUSES\tEXPIRES\tCREATED")
	for _, k := range keys {
		expires := "never"
		if k.ExpiresAt != nil {
			expires = k.ExpiresAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%t\t%d/%d\t%s\t%s\n",
			k.KeyCode, k.IsActive, k.CurrentUses, k.MaxUses, expires,
			k.CreatedAt.UTC().Format(time.RFC3339))
	}
	return w.Flush()
}
