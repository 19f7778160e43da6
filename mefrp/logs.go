package mefrp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetOperationLogs returns one page of the account audit log.
func (c *Client) GetOperationLogs(ctx context.Context, filter OperationLogFilter) (*OperationLogList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(filter.Page))
	q.Set("pageSize", strconv.Itoa(filter.PageSize))
	for key, value := range map[string]string{
		"category":  filter.Category,
		"status":    filter.Status,
		"startTime": filter.StartTime,
		"endTime":   filter.EndTime,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}
	return fetch[OperationLogList](ctx, c, http.MethodGet, "/auth/operationLog/list", nil, q)
}

// GetOperationLogStats counts audit log entries per period.
func (c *Client) GetOperationLogStats(ctx context.Context) (*OperationLogStats, error) {
	return fetch[OperationLogStats](ctx, c, http.MethodGet, "/auth/operationLog/stats", nil, nil)
}

// GetOperationLogCategories lists the categories accepted by GetOperationLogs.
func (c *Client) GetOperationLogCategories(ctx context.Context) ([]OperationLogCategory, error) {
	return fetchList[OperationLogCategory](ctx, c, http.MethodGet, "/auth/operationLog/categories", nil, nil)
}
