package database

import "github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"

const schema = `
CREATE TABLE IF NOT EXISTS node (
  id       INTEGER PRIMARY KEY,
  position INTEGER NOT NULL UNIQUE,
  value    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS node_value ON node (value);
`

type Node struct {
	Id       primitive.NodeId `db:"id"`
	Position int              `db:"position"`
	Value    primitive.Value  `db:"value"`
}

type ValueCount struct {
	Value primitive.Value `db:"value"`
	Count int             `db:"count"`
}
