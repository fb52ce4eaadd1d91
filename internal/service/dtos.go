package service

import "github.com/godilite/maturity-server/internal/stats"

// Report is everything the dashboard renders for one company.
type Report struct {
	Company  string               `json:"company"`
	Metrics  stats.MetricList     `json:"metrics"`
	Maturity stats.MaturityResult `json:"maturity"`
	ROI      stats.ROIResult      `json:"roi"`
}
