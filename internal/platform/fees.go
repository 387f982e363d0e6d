package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// FeeConfig is the platform-wide fee and checkout-timer configuration,
// a singleton row in platform_settings.
type FeeConfig struct {
	ServiceFeePercent   float64
	ServiceFeeFixed     int64 // cents
	CheckoutTimerMinute int
}

// Validate checks the ranges enforced before save.
func (c FeeConfig) Validate() error {
	if c.ServiceFeePercent < 0 || c.ServiceFeePercent > 100 {
		return fmt.Errorf("service fee percent %.2f out of range 0-100", c.ServiceFeePercent)
	}
	if c.ServiceFeeFixed < 0 {
		return fmt.Errorf("fixed fee must not be negative")
	}
	if c.CheckoutTimerMinute < 1 || c.CheckoutTimerMinute > 60 {
		return fmt.Errorf("checkout timer %d out of range 1-60 minutes", c.CheckoutTimerMinute)
	}
	return nil
}

// GetFeeConfig loads the current configuration. A missing row returns
// platform defaults rather than an error.
func (p *PG) GetFeeConfig(ctx context.Context) (FeeConfig, error) {
	var cfg FeeConfig
	err := p.pool.QueryRow(ctx, `
		SELECT service_fee_percent, service_fee_fixed_cents, checkout_timer_minutes
		FROM platform_settings WHERE id = 1
	`).Scan(&cfg.ServiceFeePercent, &cfg.ServiceFeeFixed, &cfg.CheckoutTimerMinute)
	if errors.Is(err, pgx.ErrNoRows) {
		return FeeConfig{ServiceFeePercent: 5, CheckoutTimerMinute: 10}, nil
	}
	if err != nil {
		return FeeConfig{}, fmt.Errorf("get fee config: %w", err)
	}
	return cfg, nil
}

// SaveFeeConfig validates and upserts the configuration. Every save
// also appends a platform_settings_history row so fee changes stay
// auditable.
func (p *PG) SaveFeeConfig(ctx context.Context, cfg FeeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save fee config: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO platform_settings (id, service_fee_percent, service_fee_fixed_cents, checkout_timer_minutes, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			service_fee_percent = EXCLUDED.service_fee_percent,
			service_fee_fixed_cents = EXCLUDED.service_fee_fixed_cents,
			checkout_timer_minutes = EXCLUDED.checkout_timer_minutes,
			updated_at = NOW()
	`, cfg.ServiceFeePercent, cfg.ServiceFeeFixed, cfg.CheckoutTimerMinute)
	if err != nil {
		return fmt.Errorf("save fee config: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO platform_settings_history (service_fee_percent, service_fee_fixed_cents, checkout_timer_minutes, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, cfg.ServiceFeePercent, cfg.ServiceFeeFixed, cfg.CheckoutTimerMinute, p.operatorEmail)
	if err != nil {
		return fmt.Errorf("save fee config history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("save fee config: %w", err)
	}
	return nil
}
