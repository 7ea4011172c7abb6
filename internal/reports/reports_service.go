package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/attendance"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/billing"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/payroll"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shift"
)

const (
	summaryKeyPrefix = "reports:summary:"
	summaryCacheTTL  = 60 * time.Second
)

func summaryKey(siteID, from, to string) string {
	return fmt.Sprintf("%s%s:%s:%s", summaryKeyPrefix, siteID, from, to)
}

// SiteSummary adalah payload dashboard: agregasi shift per hari, hitungan
// absensi, total spend, pencairan gaji terakhir, dan bill outstanding tertua.
type SiteSummary struct {
	ShiftWiseCount     map[string]map[string]int   `json:"shiftWiseCount"`
	TillDateAttendance map[string]int              `json:"tillDateAttendance"`
	TillDateSpend      float64                     `json:"tillDateSpend"`
	SalaryDisbursement *payroll.SalaryDisbursement `json:"salaryDisbursement"`
	OutstandingBills   []billing.Bill              `json:"outstandingBills"`
}

//go:generate mockgen -source=reports_service.go -destination=mock/reports_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, siteID, from, to string) (*SiteSummary, error)
}

type service struct {
	db  *gorm.DB
	rdb *redis.Client
	sf  *singleflight.Group
}

func NewService(db *gorm.DB, rdb *redis.Client) Service {
	return &service{db: db, rdb: rdb, sf: &singleflight.Group{}}
}

// Summary murni fold di atas row yang di-fetch; cache Redis pendek plus
// singleflight supaya dashboard yang di-refresh ramai-ramai tidak
// menghantam database berkali-kali.
func (s *service) Summary(ctx context.Context, siteID, from, to string) (*SiteSummary, error) {
	cacheKey := summaryKey(siteID, from, to)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var out SiteSummary
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return &out, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		out, err := s.buildSummary(ctx, siteID, from, to)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(out); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL)
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*SiteSummary), nil
}

func (s *service) buildSummary(ctx context.Context, siteID, from, to string) (*SiteSummary, error) {
	if from == "" {
		from = "1970-01-01"
	}
	if to == "" {
		to = "2999-12-31"
	}

	var shifts []shift.Shift
	err := s.db.WithContext(ctx).
		Where("site_id = ? AND date BETWEEN ? AND ?", siteID, from, to).
		Find(&shifts).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}

	// Client lama membaca key MORNING, yang baru DAY; keduanya diisi.
	shiftWise := make(map[string]map[string]int)
	for _, row := range shifts {
		day := row.Date.Format("2006-01-02")
		if _, ok := shiftWise[day]; !ok {
			shiftWise[day] = map[string]int{
				shift.TypeDay: 0, "MORNING": 0,
				shift.TypeEvening: 0, shift.TypeNight: 0,
			}
		}
		t := shift.NormalizeType(row.ShiftType)
		shiftWise[day][t] += row.GuardCount
		if t == shift.TypeDay {
			shiftWise[day]["MORNING"] += row.GuardCount
		}
	}

	var attRows []attendance.Attendance
	err = s.db.WithContext(ctx).
		Where("site_id = ? AND date BETWEEN ? AND ?", siteID, from, to).
		Find(&attRows).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}

	attCounts := map[string]int{
		attendance.StatusPresent: 0,
		attendance.StatusAbsent:  0,
		attendance.StatusLeave:   0,
	}
	for _, row := range attRows {
		attCounts[row.Status]++
	}

	var spendSum float64
	err = s.db.WithContext(ctx).
		Table("spends").
		Where("site_id = ? AND date BETWEEN ? AND ?", siteID, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&spendSum).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}

	var salary *payroll.SalaryDisbursement
	var latest payroll.SalaryDisbursement
	err = s.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("month DESC").
		First(&latest).Error
	switch {
	case err == nil:
		salary = &latest
	case errors.Is(err, gorm.ErrRecordNotFound):
		salary = nil
	default:
		return nil, resource.MapStorageError(err)
	}

	var bills []billing.Bill
	err = s.db.WithContext(ctx).
		Where("site_id = ? AND status = ?", siteID, billing.StatusOutstanding).
		Order("due_date ASC").
		Limit(10).
		Find(&bills).Error
	if err != nil {
		return nil, resource.MapStorageError(err)
	}
	if bills == nil {
		bills = []billing.Bill{}
	}

	return &SiteSummary{
		ShiftWiseCount:     shiftWise,
		TillDateAttendance: attCounts,
		TillDateSpend:      spendSum,
		SalaryDisbursement: salary,
		OutstandingBills:   bills,
	}, nil
}
