package tiles

import "sort"

// DateBucketMap maps an acquisition date (YYYY-MM-DD) to the links acquired
// that day, in the order they were grouped.
type DateBucketMap map[string][]string

// GroupByDate buckets links by acquisition date. Any link without a valid
// date aborts the grouping.
func GroupByDate(links []string) (DateBucketMap, error) {
	buckets := make(DateBucketMap)
	for _, link := range links {
		date, err := LinkDate(link)
		if err != nil {
			return nil, err
		}
		buckets[date] = append(buckets[date], link)
	}
	return buckets, nil
}

// Dates returns the bucket keys in chronological order.
func (m DateBucketMap) Dates() []string {
	dates := make([]string, 0, len(m))
	for date := range m {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Len returns the total number of links across all buckets.
func (m DateBucketMap) Len() int {
	n := 0
	for _, links := range m {
		n += len(links)
	}
	return n
}
