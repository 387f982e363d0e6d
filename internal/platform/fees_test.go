package platform

import "testing"

func TestFeeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     FeeConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  FeeConfig{ServiceFeePercent: 5, ServiceFeeFixed: 150, CheckoutTimerMinute: 10},
		},
		{
			name: "boundary values",
			cfg:  FeeConfig{ServiceFeePercent: 0, ServiceFeeFixed: 0, CheckoutTimerMinute: 1},
		},
		{
			name:    "percent over 100",
			cfg:     FeeConfig{ServiceFeePercent: 101, CheckoutTimerMinute: 10},
			wantErr: true,
		},
		{
			name:    "negative percent",
			cfg:     FeeConfig{ServiceFeePercent: -1, CheckoutTimerMinute: 10},
			wantErr: true,
		},
		{
			name:    "negative fixed fee",
			cfg:     FeeConfig{ServiceFeeFixed: -50, CheckoutTimerMinute: 10},
			wantErr: true,
		},
		{
			name:    "timer zero",
			cfg:     FeeConfig{ServiceFeePercent: 5, CheckoutTimerMinute: 0},
			wantErr: true,
		},
		{
			name:    "timer over an hour",
			cfg:     FeeConfig{ServiceFeePercent: 5, CheckoutTimerMinute: 61},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
