package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id        TEXT PRIMARY KEY,
    date      TEXT NOT NULL,
    amount    REAL NOT NULL,
    merchant  TEXT NOT NULL,
    category  TEXT NOT NULL,
    source    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS budgets (
    category  TEXT PRIMARY KEY,
    monthly   REAL NOT NULL,
    locked    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`
