package mefrp

import (
	"context"
	"net/http"
	"strconv"
)

// ApplyNodeDonate submits a node donation application.
func (c *Client) ApplyNodeDonate(ctx context.Context, donate NodeDonate) error {
	return c.exec(ctx, http.MethodPost, "/auth/node/donate", donate, nil)
}

// GetUserNodeDonates returns the user's donation applications.
func (c *Client) GetUserNodeDonates(ctx context.Context) ([]NodeDonate, error) {
	return fetchList[NodeDonate](ctx, c, http.MethodGet, "/auth/node/donate/list", nil, nil)
}

// ApplyNodeDelete asks for a donated node to be removed.
func (c *Client) ApplyNodeDelete(ctx context.Context, nodeID int64, reason string) error {
	req := struct {
		NodeID int64  `json:"nodeId"`
		Reason string `json:"reason"`
	}{NodeID: nodeID, Reason: reason}

	return c.exec(ctx, http.MethodPost, "/auth/node/donate/delete/apply", req, nil)
}

// ApplyNodeEdit asks for the settings of a donated node to change.
func (c *Client) ApplyNodeEdit(ctx context.Context, req NodeEditRequest) error {
	return c.exec(ctx, http.MethodPost, "/auth/node/donate/edit/apply", req, nil)
}

// GetUserNodeEditRequests lists the user's node edit requests.
func (c *Client) GetUserNodeEditRequests(ctx context.Context) ([]NodeEditRequest, error) {
	return fetchList[NodeEditRequest](ctx, c, http.MethodGet, "/auth/node/donate/edit/list", nil, nil)
}

// GetUserNodeDeleteRequests lists the user's node removal requests.
func (c *Client) GetUserNodeDeleteRequests(ctx context.Context) ([]NodeDeleteRequest, error) {
	return fetchList[NodeDeleteRequest](ctx, c, http.MethodGet, "/auth/node/donate/delete/list", nil, nil)
}

// GetInstallScript returns the frps install script of a donated node for the
// given system, architecture and node type.
func (c *Client) GetInstallScript(ctx context.Context, nodeID int64, system, arch, nodeType string) (*InstallScript, error) {
	req := struct {
		NodeID   string `json:"nodeId"`
		System   string `json:"system"`
		Arch     string `json:"arch"`
		NodeType string `json:"nodeType"`
	}{NodeID: strconv.FormatInt(nodeID, 10), System: system, Arch: arch, NodeType: nodeType}

	return fetch[InstallScript](ctx, c, http.MethodPost, "/auth/node/donate/script", req, nil)
}
