package mefrp

import (
	"context"
	"net/http"
)

// GetNodeList returns the nodes visible to the user.
func (c *Client) GetNodeList(ctx context.Context) ([]Node, error) {
	return fetchList[Node](ctx, c, http.MethodGet, "/auth/node/list", nil, nil)
}

// GetNodeStatus returns the live status of every node.
func (c *Client) GetNodeStatus(ctx context.Context) ([]NodeStatus, error) {
	return fetchList[NodeStatus](ctx, c, http.MethodGet, "/auth/node/status", nil, nil)
}

// GetNodeNameList returns the id, name and hostname of every node.
func (c *Client) GetNodeNameList(ctx context.Context) ([]NodeConnection, error) {
	return fetchList[NodeConnection](ctx, c, http.MethodGet, "/auth/node/nameList", nil, nil)
}

// GetNodeToken returns the frps secret of a node the user donated.
func (c *Client) GetNodeToken(ctx context.Context, nodeID int64) (*NodeToken, error) {
	req := struct {
		NodeID int64 `json:"nodeId"`
	}{NodeID: nodeID}

	return fetch[NodeToken](ctx, c, http.MethodPost, "/auth/node/secret", req, nil)
}
