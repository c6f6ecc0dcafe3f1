package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListPlans(ctx context.Context) ([]SubscriptionPlan, error) {
	var plans []SubscriptionPlan
	if err := c.do(ctx, "plans.list", http.MethodGet, "/admin/plans", nil, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) GetPlan(ctx context.Context, id string) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	if err := c.do(ctx, "plans.get", http.MethodGet, "/admin/plans/"+escape(id), nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) CreatePlan(ctx context.Context, in PlanInput) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	if err := c.do(ctx, "plans.create", http.MethodPost, "/admin/plans", nil, in, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) UpdatePlan(ctx context.Context, id string, in PlanInput) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	if err := c.do(ctx, "plans.update", http.MethodPut, "/admin/plans/"+escape(id), nil, in, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.do(ctx, "plans.delete", http.MethodDelete, "/admin/plans/"+escape(id), nil, nil, nil)
}

func (c *Client) SetPlanActive(ctx context.Context, id string, active bool) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	body := map[string]bool{"active": active}
	if err := c.do(ctx, "plans.status", http.MethodPatch, "/admin/plans/"+escape(id)+"/status", nil, body, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) CreateFeature(ctx context.Context, planID string, in FeatureInput) (*SubscriptionFeature, error) {
	var feature SubscriptionFeature
	path := "/admin/plans/" + escape(planID) + "/features"
	if err := c.do(ctx, "plans.features.create", http.MethodPost, path, nil, in, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (c *Client) UpdateFeature(ctx context.Context, planID, featureID string, in FeatureInput) (*SubscriptionFeature, error) {
	var feature SubscriptionFeature
	path := "/admin/plans/" + escape(planID) + "/features/" + escape(featureID)
	if err := c.do(ctx, "plans.features.update", http.MethodPut, path, nil, in, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

func (c *Client) DeleteFeature(ctx context.Context, planID, featureID string) error {
	path := "/admin/plans/" + escape(planID) + "/features/" + escape(featureID)
	return c.do(ctx, "plans.features.delete", http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) ReorderFeatures(ctx context.Context, planID string, ids []string) error {
	body := map[string][]string{"ids": ids}
	path := "/admin/plans/" + escape(planID) + "/features/order"
	return c.do(ctx, "plans.features.reorder", http.MethodPut, path, nil, body, nil)
}
