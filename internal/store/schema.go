package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS budgets (
    name      TEXT PRIMARY KEY,
    data      TEXT NOT NULL,
    saved_at  TEXT NOT NULL
);
`
