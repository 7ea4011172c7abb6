package payroll

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonth(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2026-08", want: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2026-08-15", want: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2026-12-31T00:00:00Z", want: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)},
		{in: "agustus", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		got, err := NormalizeMonth(c.in)
		if c.wantErr {
			assert.Error(t, err, c.in)
			continue
		}
		assert.NoError(t, err, c.in)
		assert.True(t, got.Equal(c.want), "%s -> %s", c.in, got)
	}
}

func TestDisbursementRequest_ToEntity(t *testing.T) {
	paid := "2026-08-28"
	req := DisbursementRequest{
		SiteID:   uuid.New().String(),
		Month:    "2026-08-05",
		Status:   StatusPaid,
		DatePaid: &paid,
	}

	row, err := req.toEntity()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), row.Month)
	assert.Equal(t, StatusPaid, row.Status)
	if assert.NotNil(t, row.DatePaid) {
		assert.Equal(t, 28, row.DatePaid.Day())
	}

	req.DatePaid = nil
	req.Month = "bukan-bulan"
	_, err = req.toEntity()
	assert.Error(t, err)
}
