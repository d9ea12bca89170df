package store

// Schema contains the DDL for the fragment database.
const Schema = `
-- One row per rap invocation
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    started_at  INTEGER NOT NULL,
    finished_at INTEGER,
    lower_size  INTEGER NOT NULL,
    upper_size  INTEGER NOT NULL,
    enzymes     TEXT NOT NULL,
    inputs      TEXT NOT NULL,
    records     INTEGER NOT NULL DEFAULT 0,
    bases       INTEGER NOT NULL DEFAULT 0,
    fragments   INTEGER NOT NULL DEFAULT 0
);

-- Emitted fragments, seq is the emission order within the run
CREATE TABLE IF NOT EXISTS fragments (
    run_id      TEXT NOT NULL,
    seq         INTEGER NOT NULL,
    sequence_id TEXT NOT NULL,
    start_pos   INTEGER NOT NULL,
    end_pos     INTEGER NOT NULL,
    upstream    TEXT NOT NULL,
    length      INTEGER NOT NULL,
    downstream  TEXT NOT NULL,
    PRIMARY KEY (run_id, seq),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_fragments_locus ON fragments(sequence_id, start_pos);
`
