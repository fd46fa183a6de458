package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL,
		role VARCHAR(100) NOT NULL,
		role_type VARCHAR(20) NOT NULL,
		default_rate NUMERIC(10,2) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_team_members_name_role_type
		ON team_members (name, role_type) WHERE active = TRUE;`,
	`CREATE TABLE IF NOT EXISTS pricing_components (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		category VARCHAR(50) NOT NULL,
		name VARCHAR(100) NOT NULL,
		base_price NUMERIC(10,2) NOT NULL,
		multiplier NUMERIC(5,2) NOT NULL DEFAULT 1.0,
		description TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_pricing_components_category_name
		ON pricing_components (category, name) WHERE active = TRUE;`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id UUID PRIMARY KEY,
		client_name VARCHAR(100) NOT NULL,
		client_email VARCHAR(100) NOT NULL DEFAULT '',
		pages INT NOT NULL,
		complexity VARCHAR(50) NOT NULL,
		timeline_weeks INT NOT NULL,
		tech_stack JSONB NOT NULL DEFAULT '[]',
		pricing_strategy VARCHAR(100) NOT NULL DEFAULT '',
		strategy_cost NUMERIC(10,2) NOT NULL DEFAULT 0,
		base_cost NUMERIC(12,2) NOT NULL,
		margin_percent NUMERIC(5,2) NOT NULL,
		total_cost NUMERIC(12,2) NOT NULL,
		profit NUMERIC(12,2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending',
		proposal_text TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_status_created_at ON quotes (status, created_at);`,
	`CREATE TABLE IF NOT EXISTS quote_team_members (
		id BIGSERIAL PRIMARY KEY,
		quote_id UUID NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
		person_name VARCHAR(100) NOT NULL,
		role_label VARCHAR(100) NOT NULL DEFAULT '',
		weekly_rate NUMERIC(10,2) NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quote_team_members_quote_id ON quote_team_members (quote_id);`,
	`CREATE TABLE IF NOT EXISTS monthly_revenue (
		period_key VARCHAR(20) PRIMARY KEY,
		revenue NUMERIC(12,2) NOT NULL,
		margin_percent NUMERIC(5,2) NOT NULL DEFAULT 50,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS monthly_financials (
		month DATE PRIMARY KEY,
		revenue NUMERIC(12,2) NOT NULL DEFAULT 0,
		expenses NUMERIC(12,2) NOT NULL DEFAULT 0,
		overhead_costs NUMERIC(12,2) NOT NULL DEFAULT 0,
		profit_loss NUMERIC(12,2) NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS fixed_costs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		frequency VARCHAR(20) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
