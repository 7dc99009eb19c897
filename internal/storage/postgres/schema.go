package postgres

type table struct {
	name string
	ddl  []string
}

// tables перечислены в порядке зависимостей: chats ссылается на users и models.
var tables = []table{
	{
		name: "users",
		ddl: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id         BIGSERIAL PRIMARY KEY,
				name       VARCHAR NOT NULL,
				username   VARCHAR NOT NULL,
				created_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS ix_users_name ON users (name)`,
		},
	},
	{
		name: "models",
		ddl: []string{
			`CREATE TABLE IF NOT EXISTS models (
				id   BIGSERIAL PRIMARY KEY,
				name VARCHAR NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS ix_models_name ON models (name)`,
		},
	},
	{
		name: "chats",
		ddl: []string{
			`CREATE TABLE IF NOT EXISTS chats (
				id          BIGSERIAL PRIMARY KEY,
				user_id     BIGINT NOT NULL REFERENCES users (id),
				model_id    BIGINT NOT NULL REFERENCES models (id),
				file        VARCHAR NOT NULL,
				"timestamp" TIMESTAMPTZ NOT NULL
			)`,
		},
	},
}

// TableNames returns the managed tables in dependency order.
func TableNames() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}
