package schema

// TableDefinitions contains all the SQL statements to create the database tables.
// Uniqueness constraints here are load-bearing: identity resolution and the
// membership state machine rely on them for race safety.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		id UUID PRIMARY KEY,
		email VARCHAR(255),
		email_hash VARCHAR(64),
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		phone VARCHAR(50),
		account_id VARCHAR(255),
		billing_customer_id VARCHAR(255),
		distinct_id VARCHAR(255),
		ad_external_id VARCHAR(255),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS identity_links (
		identity_type VARCHAR(50) NOT NULL,
		identity_value VARCHAR(255) NOT NULL,
		person_id UUID NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (identity_type, identity_value)
	)`,
	`CREATE TABLE IF NOT EXISTS attribution_touches (
		anonymous_id UUID NOT NULL,
		session_id UUID NOT NULL,
		email_message_id VARCHAR(255),
		link_url TEXT,
		utm_source VARCHAR(255),
		utm_medium VARCHAR(255),
		utm_campaign VARCHAR(255),
		utm_content VARCHAR(255),
		utm_term VARCHAR(255),
		first_landing_page TEXT,
		first_referrer TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		PRIMARY KEY (anonymous_id, session_id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		person_id UUID,
		anonymous_id UUID NOT NULL,
		session_id UUID NOT NULL,
		source VARCHAR(50) NOT NULL,
		properties JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS person_features (
		person_id UUID PRIMARY KEY,
		lessons_completed_30d INTEGER NOT NULL DEFAULT 0,
		email_opens_30d INTEGER NOT NULL DEFAULT 0,
		email_clicks_30d INTEGER NOT NULL DEFAULT 0,
		page_views_30d INTEGER NOT NULL DEFAULT 0,
		orders_count INTEGER NOT NULL DEFAULT 0,
		lifetime_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		courses_enrolled INTEGER NOT NULL DEFAULT 0,
		first_utm_source VARCHAR(255),
		last_seen_at TIMESTAMP,
		computed_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS segments (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		conditions JSONB NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS segment_memberships (
		id UUID PRIMARY KEY,
		person_id UUID NOT NULL,
		segment_id VARCHAR(64) NOT NULL,
		entered_at TIMESTAMP NOT NULL,
		exited_at TIMESTAMP,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
}

// IndexDefinitions contains the indexes created after the tables
var IndexDefinitions = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_email ON persons (email) WHERE email IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_account_id ON persons (account_id) WHERE account_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_billing_customer_id ON persons (billing_customer_id) WHERE billing_customer_id IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_events_person_id ON events (person_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_events_visitor ON events (anonymous_id, session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attribution_expires_at ON attribution_touches (expires_at)`,
	// one active membership per (person, segment); closed rows are history
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_active ON segment_memberships (person_id, segment_id) WHERE is_active`,
	`CREATE INDEX IF NOT EXISTS idx_memberships_person ON segment_memberships (person_id)`,
	`CREATE INDEX IF NOT EXISTS idx_memberships_segment ON segment_memberships (segment_id) WHERE is_active`,
}
