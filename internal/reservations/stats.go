package reservations

import (
	"context"
	"fmt"
	"time"
)

// Stats are the back-office dashboard numbers: confirmed revenue,
// confirmed count, today's bookings and the day-bucketed revenue series
// behind the chart.
type Stats struct {
	Revenue        int64        `json:"revenue"`
	ConfirmedCount int64        `json:"confirmed_count"`
	TodayCount     int64        `json:"today_count"`
	Daily          []RevenueDay `json:"daily"`
}

// RevenueDay is one chart point: confirmed revenue grouped by booking day.
type RevenueDay struct {
	Day     string `json:"day"` // yyyy-mm-dd
	Revenue int64  `json:"revenue"`
	Count   int64  `json:"count"`
}

// GetStats aggregates the dashboard figures. now determines "today" and
// the trailing window of the daily series.
func (r *Repository) GetStats(ctx context.Context, now time.Time, windowDays int) (*Stats, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	today := now.UTC().Format("2006-01-02")
	stats := &Stats{}

	revenueQuery := `
		SELECT COALESCE(SUM(total_price), 0), COUNT(*)
		FROM reservations
		WHERE status = 'confirme'
	`
	if err := r.db.QueryRow(ctx, revenueQuery).Scan(&stats.Revenue, &stats.ConfirmedCount); err != nil {
		return nil, fmt.Errorf("reservations: stats revenue: %w", err)
	}

	todayQuery := `SELECT COUNT(*) FROM reservations WHERE booking_date = $1`
	if err := r.db.QueryRow(ctx, todayQuery, today).Scan(&stats.TodayCount); err != nil {
		return nil, fmt.Errorf("reservations: stats today: %w", err)
	}

	since := now.UTC().AddDate(0, 0, -windowDays).Format("2006-01-02")
	dailyQuery := `
		SELECT booking_date, COALESCE(SUM(total_price), 0), COUNT(*)
		FROM reservations
		WHERE status = 'confirme' AND booking_date >= $1
		GROUP BY booking_date
		ORDER BY booking_date ASC
	`
	rows, err := r.db.Query(ctx, dailyQuery, since)
	if err != nil {
		return nil, fmt.Errorf("reservations: stats daily: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day time.Time
		var point RevenueDay
		if err := rows.Scan(&day, &point.Revenue, &point.Count); err != nil {
			return nil, fmt.Errorf("reservations: stats daily scan: %w", err)
		}
		point.Day = day.Format("2006-01-02")
		stats.Daily = append(stats.Daily, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reservations: stats daily rows: %w", err)
	}
	return stats, nil
}
