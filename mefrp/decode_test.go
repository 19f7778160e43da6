package mefrp

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUserInfoWithoutOptionalFields(t *testing.T) {
	info, err := DecodeRecord[UserInfo](json.RawMessage(userInfoJSON))
	require.NoError(t, err)

	assert.Equal(t, int64(42), info.UserID)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "VIP", info.FriendlyGroup)
	assert.Equal(t, int64(1073741824), info.Traffic)
	assert.Nil(t, info.BanReason)
	assert.Nil(t, info.VipExpireTime)
	assert.Zero(t, info.RealnameTimes)
}

func TestDecodeUserInfoWithOptionalFields(t *testing.T) {
	raw := strings.Replace(userInfoJSON, `"todaySigned": false`,
		`"todaySigned": true, "banReason": "spam", "realnameTimes": 2, "vipExpireTime": 1800000000`, 1)

	info, err := DecodeRecord[UserInfo](json.RawMessage(raw))
	require.NoError(t, err)

	require.NotNil(t, info.BanReason)
	assert.Equal(t, "spam", *info.BanReason)
	assert.Equal(t, 2, info.RealnameTimes)
	require.NotNil(t, info.VipExpireTime)
	assert.Equal(t, int64(1800000000), *info.VipExpireTime)
}

func TestDecodeRecordErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantField string
	}{
		{
			name:      "missing required field",
			raw:       strings.Replace(userInfoJSON, `"username": "alice",`, "", 1),
			wantField: "data.username",
		},
		{
			name:      "wrong type",
			raw:       strings.Replace(userInfoJSON, `"userId": 42`, `"userId": "forty-two"`, 1),
			wantField: "data.userId",
		},
		{
			name:      "null record",
			raw:       `null`,
			wantField: "data",
		},
		{
			name:      "not an object",
			raw:       `[1, 2, 3]`,
			wantField: "data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecord[UserInfo](json.RawMessage(tt.raw))
			require.Error(t, err)

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr), "got %T", err)
			assert.Equal(t, tt.wantField, decErr.Field)
			assert.Equal(t, KindDecode, KindOf(err))
		})
	}
}

func TestDecodeNestedPath(t *testing.T) {
	broken := strings.Replace(proxyJSON, `"proxyId": 7,`, "", 1)
	raw := `{"proxies": [` + proxyJSON + `,` + broken + `], "nodes": []}`

	_, err := DecodeRecord[ProxyList](json.RawMessage(raw))

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "data.proxies[1].proxyId", decErr.Field)
}

func TestDecodeProxyList(t *testing.T) {
	raw := `{
		"proxies": [` + proxyJSON + `],
		"nodes": [{"nodeId": 3, "name": "HK-1", "hostname": "hk1.example.com"}]
	}`

	list, err := DecodeRecord[ProxyList](json.RawMessage(raw))
	require.NoError(t, err)

	require.Len(t, list.Proxies, 1)
	assert.Equal(t, int64(7), list.Proxies[0].ProxyID)
	assert.Equal(t, "web", list.Proxies[0].ProxyName)
	assert.Empty(t, list.Proxies[0].HTTPPlugin)
	require.Len(t, list.Nodes, 1)
	assert.Equal(t, "HK-1", list.Nodes[0].Name)
}

func TestDecodeEmbeddedDefaults(t *testing.T) {
	raw := `[{
		"nodeId": 1, "name": "n", "hostname": "h", "description": "", "token": "t",
		"servicePort": 7000, "adminPort": 7500, "adminPass": "", "allowGroup": "",
		"allowPort": "", "allowType": "tcp", "region": "hk", "bandwidth": "100M",
		"isOnline": true, "isDisabled": false, "totalTrafficIn": 1, "totalTrafficOut": 2,
		"upTime": 3, "version": "0.61.0"
	}]`

	nodes, err := DecodeRecordList[NodeWithLoad](json.RawMessage(raw))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	assert.Equal(t, int64(1), nodes[0].NodeID)
	assert.Zero(t, nodes[0].LoadPercent)
	assert.Zero(t, nodes[0].DonateID)
	assert.Empty(t, nodes[0].DonateUser)

	_, err = DecodeRecordList[NodeWithLoad](json.RawMessage(strings.Replace(raw, `"version": "0.61.0"`, `"x": 1`, 1)))
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "data[0].version", decErr.Field)
}

func TestDecodeAdCreditDefaults(t *testing.T) {
	credit, err := DecodeRecord[AdCredit](json.RawMessage(`{"creditId": 1, "userId": 2, "username": "bob", "slotId": 3}`))
	require.NoError(t, err)

	assert.Nil(t, credit.SlotName)
	assert.Zero(t, credit.Total)
	assert.Zero(t, credit.Used)
	assert.Zero(t, credit.ExpireTime)
}

func TestDecodeRecordListNull(t *testing.T) {
	nodes, err := DecodeRecordList[Node](json.RawMessage(`null`))
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestDecodeScalar(t *testing.T) {
	notice, err := DecodeRecord[string](json.RawMessage(`"maintenance tonight"`))
	require.NoError(t, err)
	assert.Equal(t, "maintenance tonight", *notice)

	_, err = DecodeRecord[string](json.RawMessage(`12`))
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	status, err := DecodeRecord[SystemStatus](json.RawMessage(`{"status": 1, "remark": "degraded", "extra": true}`))
	require.NoError(t, err)
	assert.Equal(t, 1, status.Status)
	assert.Equal(t, "degraded", status.Remark)
}

func TestDecodePresentNullCountsAsPresent(t *testing.T) {
	status, err := DecodeRecord[SystemStatus](json.RawMessage(`{"status": 0, "remark": null}`))
	require.NoError(t, err)
	assert.Empty(t, status.Remark)
}
