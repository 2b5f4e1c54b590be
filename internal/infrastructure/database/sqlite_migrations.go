package database

// Migration is a single schema step. Append new steps with increasing versions.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "briefings and budgets",
		SQL: `
CREATE TABLE IF NOT EXISTS briefings (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    client_id TEXT NOT NULL,
    status TEXT NOT NULL,
    answers TEXT NOT NULL DEFAULT '{}',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    deleted_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_briefings_tenant_status ON briefings(tenant_id, status);

CREATE TABLE IF NOT EXISTS budgets (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    tenant_id TEXT NOT NULL,
    briefing_id TEXT NOT NULL REFERENCES briefings(id),
    client_id TEXT NOT NULL,
    responsible_user_id TEXT NOT NULL,
    status TEXT NOT NULL,
    methodology_version TEXT NOT NULL,
    total INTEGER NOT NULL,
    value_per_m2 INTEGER NOT NULL,
    details TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    deleted_at TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_budgets_active_briefing
    ON budgets(tenant_id, briefing_id) WHERE deleted_at IS NULL;
`,
	},
	{
		Version:     2,
		Description: "tenant pricing overrides",
		SQL: `
CREATE TABLE IF NOT EXISTS pricing_configs (
    tenant_id TEXT PRIMARY KEY,
    config TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`,
	},
}
