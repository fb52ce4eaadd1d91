package service

import "fmt"

// Cache key prefixes shared by every transport, so a submitted evaluation
// can evict what any of them cached.
const (
	CacheKeyCompanyStats  = "reports:company_stats"
	CacheKeyCompanyReport = "reports:company_report"
)

func CompanyCacheKey(prefix, company string) string {
	return fmt.Sprintf("%s:%s", prefix, company)
}

// CompanyCacheKeys lists every cached key for company.
func CompanyCacheKeys(company string) []string {
	return []string{
		CompanyCacheKey(CacheKeyCompanyStats, company),
		CompanyCacheKey(CacheKeyCompanyReport, company),
	}
}
