package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	sql := "-- schema\r\nCREATE TABLE a (\r\n  id INT64,\r\n) PRIMARY KEY (id);\r\n\r\nCREATE INDEX a_by_id ON a(id);\r\n"

	assert.Equal(t, []string{
		"CREATE TABLE a (\n  id INT64,\n) PRIMARY KEY (id)",
		"CREATE INDEX a_by_id ON a(id)",
	}, splitStatements(sql))
}

func TestSplitStatements_Empty(t *testing.T) {
	assert.Empty(t, splitStatements("-- nothing here\n\n"))
}
