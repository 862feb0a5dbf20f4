package postgres

import "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder configured for PostgreSQL
// ($1, $2, ...) placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
