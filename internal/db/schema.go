package db

// schemaStatements are applied in order by EnsureSchema; each is idempotent
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL DEFAULT '',
		title        TEXT NOT NULL DEFAULT '',
		bio          TEXT NOT NULL DEFAULT '',
		skills       JSONB NOT NULL DEFAULT '[]'::jsonb,
		goals        JSONB NOT NULL DEFAULT '[]'::jsonb,
		work_style   JSONB NOT NULL DEFAULT '[]'::jsonb,
		experience   DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (experience >= 0),
		availability TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dismissed_matches (
		user_id           TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		dismissed_user_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, dismissed_user_id)
	)`,
}
