package store

import (
	"context"
	"errors"
	"time"

	"panelgrid/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// traceSink emits query events to a tracer when one is configured.
// Both the pooled adapter and the in-transaction querier share it so
// queries are traced the same way on either path.
type traceSink struct {
	tracer pg.QueryTracer
	slowUS int64
}

func (s traceSink) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if s.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	s.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      s.slowUS >= 0 && elapsedUS >= s.slowUS,
	})
}

// pgAdapter implements RowQuerier and TxRunner over a pg.PG pool
type pgAdapter struct {
	p    *pg.PG
	sink traceSink
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{p: p, sink: traceSink{tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000}}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.p.Pool.Exec(ctx, sql, args...)
	a.sink.emit(ctx, sql, args, start, err)
	return tagShim{ct}, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	a.sink.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowsShim{r: rs}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	// the event is emitted after Scan so it can carry the scan error
	start := time.Now()
	return rowShim{
		r: a.p.Pool.QueryRow(ctx, sql, args...),
		after: func(scanErr error) {
			a.sink.emit(ctx, sql, args, start, scanErr)
		},
	}
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txQuerier{tx: tx, sink: a.sink}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// txQuerier satisfies RowQuerier inside an open pgx transaction
type txQuerier struct {
	tx   pgx.Tx
	sink traceSink
}

func (t txQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.tx.Exec(ctx, sql, args...)
	t.sink.emit(ctx, sql, args, start, err)
	return tagShim{ct}, err
}

func (t txQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.Query(ctx, sql, args...)
	t.sink.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowsShim{r: rs}, nil
}

func (t txQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return rowShim{
		r: t.tx.QueryRow(ctx, sql, args...),
		after: func(scanErr error) {
			t.sink.emit(ctx, sql, args, start, scanErr)
		},
	}
}

// shims narrowing pgx types to the package's Row/Rows/CommandTag

type rowShim struct {
	r     pgx.Row
	after func(error)
}

func (x rowShim) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rowsShim struct{ r pgx.Rows }

func (x rowsShim) Next() bool            { return x.r.Next() }
func (x rowsShim) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rowsShim) Err() error            { return x.r.Err() }
func (x rowsShim) Close()                { x.r.Close() }
func (x rowsShim) Columns() []string {
	f := x.r.FieldDescriptions()
	out := make([]string, len(f))
	for i := range f {
		out[i] = string(f[i].Name)
	}
	return out
}

type tagShim struct{ t pgconn.CommandTag }

func (t tagShim) String() string      { return t.t.String() }
func (t tagShim) RowsAffected() int64 { return t.t.RowsAffected() }
