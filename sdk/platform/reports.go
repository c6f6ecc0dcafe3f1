package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListReports(ctx context.Context, params ListParams) (*Page[ProblemReport], error) {
	var page Page[ProblemReport]
	if err := c.do(ctx, "reports.list", http.MethodGet, "/admin/problem-reports", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetReport(ctx context.Context, id string) (*ProblemReport, error) {
	var r ProblemReport
	if err := c.do(ctx, "reports.get", http.MethodGet, "/admin/problem-reports/"+escape(id), nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReportStatus moves a report to resolved or dismissed.
func (c *Client) UpdateReportStatus(ctx context.Context, id, status, resolution string) (*ProblemReport, error) {
	var r ProblemReport
	body := map[string]string{"status": status, "resolution": resolution}
	if err := c.do(ctx, "reports.status", http.MethodPatch, "/admin/problem-reports/"+escape(id)+"/status", nil, body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
