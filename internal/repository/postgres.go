package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gigflow/internal/gigerrors"
	model "gigflow/internal/models"
)

const uniqueViolation = "23505"

// NewPostgresPool creates and verifies a pgxpool connection pool.
func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return pool, nil
}

// PostgresRepo is the PostgreSQL-backed implementation of GigDB. Its
// atomic unit of work is a storage-native transaction with FOR UPDATE
// row locks on the affected gig and bid.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo creates a PostgresRepo on an existing pool
func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

// Migrate creates the gigflow schema if it does not exist. The unique
// index on (gig_id, freelancer_id) backs the one-bid-per-freelancer rule.
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS gigs (
			gig_id      TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			budget      DOUBLE PRECISION NOT NULL CHECK (budget > 0),
			owner_id    TEXT NOT NULL,
			owner_name  TEXT NOT NULL,
			status      TEXT NOT NULL DEFAULT 'open',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS bids (
			bid_id        TEXT PRIMARY KEY,
			gig_id        TEXT NOT NULL REFERENCES gigs(gig_id) ON DELETE CASCADE,
			freelancer_id TEXT NOT NULL,
			message       TEXT NOT NULL,
			price         DOUBLE PRECISION NOT NULL CHECK (price > 0),
			status        TEXT NOT NULL DEFAULT 'pending',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS bids_gig_freelancer
			ON bids (gig_id, freelancer_id);`)
	if err != nil {
		return fmt.Errorf("migrate gigflow schema: %w", err)
	}
	return nil
}

const gigColumns = `gig_id, title, description, budget, owner_id, owner_name, status, created_at`
const bidColumns = `bid_id, gig_id, freelancer_id, message, price, status, created_at`

// CreateGig stores a new gig
func (r *PostgresRepo) CreateGig(ctx context.Context, gig model.Gig) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO gigs (`+gigColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		gig.GigID, gig.Title, gig.Description, gig.Budget,
		gig.OwnerID, gig.OwnerName, gig.Status, gig.CreatedAt)
	if err != nil {
		return fmt.Errorf("create gig %s: %w: %v", gig.GigID, gigerrors.ErrTxRetryable, err)
	}
	return nil
}

// GetGig returns a gig by ID
func (r *PostgresRepo) GetGig(ctx context.Context, gigID string) (model.Gig, error) {
	gig, err := scanGig(r.pool.QueryRow(ctx,
		`SELECT `+gigColumns+` FROM gigs WHERE gig_id = $1`, gigID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListGigs returns gigs matching the status, optionally filtered by a
// case-insensitive title/description search, newest first.
func (r *PostgresRepo) ListGigs(ctx context.Context, search string, status model.GigStatus) ([]model.Gig, error) {
	const q = `SELECT ` + gigColumns + ` FROM gigs
		WHERE status = $1
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, status, search)
	if err != nil {
		return nil, fmt.Errorf("list gigs: %w", err)
	}
	defer rows.Close()
	return collectGigs(rows)
}

// GigsByOwner returns all gigs posted by a user, newest first
func (r *PostgresRepo) GigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+gigColumns+` FROM gigs WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("gigs by owner %s: %w", ownerID, err)
	}
	defer rows.Close()
	return collectGigs(rows)
}

// DeleteOpenGig removes a gig and, via ON DELETE CASCADE, its bids, but
// only while the gig is still open.
func (r *PostgresRepo) DeleteOpenGig(ctx context.Context, gigID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM gigs WHERE gig_id = $1 AND status = $2`, gigID, model.GigOpen)
	if err != nil {
		return fmt.Errorf("delete gig %s: %w: %v", gigID, gigerrors.ErrTxRetryable, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish missing from already-assigned for the error taxonomy.
		if _, err := r.GetGig(ctx, gigID); err != nil {
			return fmt.Errorf("delete gig %s: %w", gigID, gigerrors.ErrGigNotFound)
		}
		return fmt.Errorf("delete gig %s: %w", gigID, gigerrors.ErrGigNotOpen)
	}
	return nil
}

// CreateBid records a freelancer's bid. The openness check shares the
// insert's transaction with a FOR SHARE lock on the gig row, so a bid can
// never land on a gig that a concurrent hire has already assigned.
func (r *PostgresRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("record bid for gig %s: %w: %v", bid.GigID, gigerrors.ErrTxRetryable, err)
	}
	defer tx.Rollback(ctx)

	var status model.GigStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM gigs WHERE gig_id = $1 FOR SHARE`, bid.GigID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("record bid for gig %s: %w", bid.GigID, gigerrors.ErrGigNotFound)
	}
	if err != nil {
		return fmt.Errorf("record bid for gig %s: %w: %v", bid.GigID, gigerrors.ErrTxRetryable, err)
	}
	if status != model.GigOpen {
		return fmt.Errorf("record bid for gig %s: %w", bid.GigID, gigerrors.ErrGigNotOpen)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bids (`+bidColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		bid.BidID, bid.GigID, bid.FreelancerID, bid.Message, bid.Price, bid.Status, bid.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("record bid for gig %s: %w", bid.GigID, gigerrors.ErrDuplicateBid)
		}
		return fmt.Errorf("record bid for gig %s: %w: %v", bid.GigID, gigerrors.ErrTxRetryable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("record bid for gig %s: %w: %v", bid.GigID, gigerrors.ErrTxRetryable, err)
	}
	return nil
}

// GetBid returns a bid by ID
func (r *PostgresRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	bid, err := scanBid(r.pool.QueryRow(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE bid_id = $1`, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, gigerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// BidsByGig returns all bids on a gig, newest first
func (r *PostgresRepo) BidsByGig(ctx context.Context, gigID string) ([]model.Bid, error) {
	if _, err := r.GetGig(ctx, gigID); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE gig_id = $1 ORDER BY created_at DESC`, gigID)
	if err != nil {
		return nil, fmt.Errorf("bids by gig %s: %w", gigID, err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// BidsByFreelancer returns all bids a user has placed, newest first
func (r *PostgresRepo) BidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE freelancer_id = $1 ORDER BY created_at DESC`, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("bids by freelancer %s: %w", freelancerID, err)
	}
	defer rows.Close()
	return collectBids(rows)
}

// HireExclusively runs the hire transition inside one transaction. Both
// rows are locked FOR UPDATE before decide re-validates them, so a second
// racing transaction blocks on the lock and then observes the committed
// assigned status.
func (r *PostgresRepo) HireExclusively(ctx context.Context, gigID, bidID string, decide HireDecider) (model.Gig, model.Bid, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire tx on gig %s: %w: %v", gigID, gigerrors.ErrTxRetryable, err)
	}
	defer tx.Rollback(ctx)

	gig, err := scanGig(tx.QueryRow(ctx,
		`SELECT `+gigColumns+` FROM gigs WHERE gig_id = $1 FOR UPDATE`, gigID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire on gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire tx on gig %s: %w: %v", gigID, gigerrors.ErrTxRetryable, err)
	}

	bid, err := scanBid(tx.QueryRow(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE bid_id = $1 AND gig_id = $2 FOR UPDATE`, bidID, gigID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, gigerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire tx on gig %s: %w: %v", gigID, gigerrors.ErrTxRetryable, err)
	}

	decision, err := decide(gig, bid)
	if err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire bid %s on gig %s: %w", bidID, gigID, err)
	}

	for _, step := range []struct {
		sql  string
		args []any
	}{
		{`UPDATE gigs SET status = $1 WHERE gig_id = $2`, []any{decision.Gig, gigID}},
		{`UPDATE bids SET status = $1 WHERE bid_id = $2`, []any{decision.Winner, bidID}},
		{`UPDATE bids SET status = $1 WHERE gig_id = $2 AND bid_id <> $3 AND status = $4`,
			[]any{decision.OtherBids, gigID, bidID, model.BidPending}},
	} {
		if _, err := tx.Exec(ctx, step.sql, step.args...); err != nil {
			return model.Gig{}, model.Bid{}, fmt.Errorf("hire tx on gig %s: %w: %v", gigID, gigerrors.ErrTxRetryable, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Gig{}, model.Bid{}, fmt.Errorf("hire tx on gig %s: %w: %v", gigID, gigerrors.ErrTxRetryable, err)
	}

	gig.Status = decision.Gig
	bid.Status = decision.Winner
	return gig, bid, nil
}

func scanGig(row pgx.Row) (model.Gig, error) {
	var g model.Gig
	err := row.Scan(&g.GigID, &g.Title, &g.Description, &g.Budget,
		&g.OwnerID, &g.OwnerName, &g.Status, &g.CreatedAt)
	return g, err
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var b model.Bid
	err := row.Scan(&b.BidID, &b.GigID, &b.FreelancerID, &b.Message,
		&b.Price, &b.Status, &b.CreatedAt)
	return b, err
}

func collectGigs(rows pgx.Rows) ([]model.Gig, error) {
	gigs := make([]model.Gig, 0)
	for rows.Next() {
		g, err := scanGig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gig: %w", err)
		}
		gigs = append(gigs, g)
	}
	return gigs, rows.Err()
}

func collectBids(rows pgx.Rows) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}
