// cmd/orgctl/main.go
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/config"
	"github.com/dangerclosesec/orgmembers/internal/database"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// expireInvitationsQuery flips overdue pending invitations and writes one
// audit row per flipped invitation in the same statement.
const expireInvitationsQuery = `
WITH expired AS (
	UPDATE invitation_tokens
	SET status = 'expired'
	WHERE status = 'pending' AND expires_at < $1
	RETURNING id
)
INSERT INTO audit_logs (action, table_name, record_id, old_values, new_values)
SELECT $2::text, 'invitation_tokens', id::text, '{"status":"pending"}'::jsonb, '{"status":"expired"}'::jsonb
FROM expired`

const countOverdueQuery = `SELECT count(*) FROM invitation_tokens WHERE status = 'pending' AND expires_at < $1`

var (
	dbConnString string
	dryRun       bool
	asJSON       bool
	password     string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection URL (defaults to the DB_* settings)")

	expireCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only count overdue invitations")
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "Print stats as JSON")
	hashPasswordCmd.Flags().StringVarP(&password, "password", "p", "", "Password to hash (read from stdin when empty)")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	operatorCmd.AddCommand(hashPasswordCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(expireCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(operatorCmd)
}

var rootCmd = &cobra.Command{
	Use:          "orgctl",
	Short:        "orgctl administers the organization membership service",
	Long:         `orgctl runs schema migrations, sweeps expired invitations and prints platform statistics.`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd, "up")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(cmd, "down")
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := connURL()
		if err != nil {
			return err
		}

		db, err := database.OpenSQL(url)
		if err != nil {
			return err
		}
		defer db.Close()

		version, dirty, err := database.Version(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
		return nil
	},
}

var expireCmd = &cobra.Command{
	Use:   "expire-invitations",
	Short: "Mark every overdue pending invitation as expired",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		now := time.Now().UTC()
		if dryRun {
			var n int64
			if err := pool.QueryRow(ctx, countOverdueQuery, now).Scan(&n); err != nil {
				return fmt.Errorf("counting overdue invitations: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d invitations would expire\n", n)
			return nil
		}

		tag, err := pool.Exec(ctx, expireInvitationsQuery, now, model.ActionInvitationExpired)
		if err != nil {
			return fmt.Errorf("expiring invitations: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d invitations expired\n", tag.RowsAffected())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print platform statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		stats := &repository.Stats{}
		since := time.Now().UTC().Add(-30 * 24 * time.Hour)
		if err := pool.QueryRow(ctx, repository.StatsQuery, since).Scan(stats.ScanTargets()...); err != nil {
			return fmt.Errorf("collecting stats: %w", err)
		}
		stats.Finish()

		return printStats(cmd.OutOrStdout(), stats, asJSON)
	},
}

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Manage the operator credential",
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print an argon2id hash for OPERATOR_PASSWORD_HASH",
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := password
		if pw == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && err != io.EOF {
				return fmt.Errorf("reading password: %w", err)
			}
			pw = strings.TrimRight(line, "\r\n")
		}

		if reason := auth.CheckPasswordPolicy(pw); reason != "" {
			return fmt.Errorf("password rejected: %s", reason)
		}

		hash, err := auth.NewPasswordHasher().Hash(pw)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func runMigration(cmd *cobra.Command, direction string) error {
	url, err := connURL()
	if err != nil {
		return err
	}

	db, err := database.OpenSQL(url)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db, direction); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", direction)
	return nil
}

func connURL() (string, error) {
	if dbConnString != "" {
		return dbConnString, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.MigrationURL(), nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	url, err := connURL()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

func printStats(w io.Writer, stats *repository.Stats, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Fprintf(w, "users          total=%d active=%d inactive=%d\n",
		stats.Users.Total, stats.Users.Active, stats.Users.Inactive)
	fmt.Fprintf(w, "organizations  total=%d active=%d inactive=%d recent=%d\n",
		stats.Organizations.Total, stats.Organizations.Active, stats.Organizations.Inactive, stats.Organizations.Recent)
	fmt.Fprintf(w, "memberships    total=%d owners=%d admins=%d members=%d\n",
		stats.Memberships.Total, stats.Memberships.Owners, stats.Memberships.Admins, stats.Memberships.Members)
	fmt.Fprintf(w, "invitations    pending=%d\n", stats.Invitations.Pending)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
