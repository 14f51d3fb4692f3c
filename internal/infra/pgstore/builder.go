package pgstore

import "github.com/Masterminds/squirrel"

// psql builds queries with Postgres $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
