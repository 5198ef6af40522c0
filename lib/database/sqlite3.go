package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/linkedlist"
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Database keeps a snapshot of a list's nodes in sqlite so that orderings
// can be computed by the database instead of by Go code.
type Database struct {
	dsn string
	db  *sqlx.DB
	tx  *sqlx.Tx
	prepareStatements
}

type prepareStatements struct {
	insertNode           *sqlx.Stmt
	resolveNodes         *sqlx.Stmt
	resolveValues        *sqlx.Stmt
	resolveOrderedValues *sqlx.Stmt
	resolveValueCounts   *sqlx.Stmt
}

func New(dsn string) *Database {
	return &Database{dsn: dsn}
}

// NewMemory returns a database that lives only as long as it is connected.
// The name is unique so that separate instances never share tables.
func NewMemory() *Database {
	return New(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

func connectSqlite3(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "dsn: %s", dsn)
	}
	return db, nil
}

func (d *Database) Connect() error {
	db, err := connectSqlite3(d.dsn)
	if err != nil {
		return err
	}
	d.db = db

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return errors.WithStack(err)
	}

	tx, err := db.Beginx()
	if err != nil {
		db.Close()
		return errors.WithStack(err)
	}
	d.tx = tx

	if err := d.initializePrepareStatements(); err != nil {
		tx.Rollback()
		db.Close()
		return err
	}

	return nil
}

func (d *Database) Close() error {
	if err := d.tx.Commit(); err != nil {
		d.db.Close()
		return errors.WithStack(err)
	}
	return errors.WithStack(d.db.Close())
}

func (d *Database) initializePrepareStatements() error {
	ctx := context.Background()

	stmt, err := d.tx.PreparexContext(
		ctx,
		`INSERT INTO node (id, position, value) VALUES (?, ?, ?)`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.insertNode = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`SELECT id, position, value FROM node ORDER BY position`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveNodes = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`SELECT value FROM node ORDER BY position`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveValues = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`SELECT value FROM node ORDER BY value, position`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveOrderedValues = stmt

	stmt, err = d.tx.PreparexContext(
		ctx,
		`SELECT value, COUNT(*) AS count FROM node GROUP BY value ORDER BY value`,
	)
	if err != nil {
		return errors.WithStack(err)
	}
	d.resolveValueCounts = stmt

	return nil
}

func (d *Database) InsertNode(id primitive.NodeId, position int, value primitive.Value) error {
	_, err := d.insertNode.Exec(id, position, value)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// InsertList stores every node of list with its current position.
func (d *Database) InsertList(list *linkedlist.List) error {
	return list.Map(func(index int, id primitive.NodeId, v primitive.Value) error {
		return d.InsertNode(id, index, v)
	})
}

func (d *Database) ResolveNodes() ([]*Node, error) {
	var nodes []*Node
	if err := d.resolveNodes.Select(&nodes); err != nil {
		return nil, errors.WithStack(err)
	}
	return nodes, nil
}

func (d *Database) ResolveValues() ([]primitive.Value, error) {
	values := make([]primitive.Value, 0)
	if err := d.resolveValues.Select(&values); err != nil {
		return nil, errors.WithStack(err)
	}
	return values, nil
}

func (d *Database) ResolveOrderedValues() ([]primitive.Value, error) {
	values := make([]primitive.Value, 0)
	if err := d.resolveOrderedValues.Select(&values); err != nil {
		return nil, errors.WithStack(err)
	}
	return values, nil
}

func (d *Database) ResolveValueCounts() ([]ValueCount, error) {
	counts := make([]ValueCount, 0)
	if err := d.resolveValueCounts.Select(&counts); err != nil {
		return nil, errors.WithStack(err)
	}
	return counts, nil
}
