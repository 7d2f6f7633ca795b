package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateAddress 测试收货地址创建
func TestCreateAddress(t *testing.T) {
	RequireServer(t)

	t.Run("首个地址自动设为默认", func(t *testing.T) {
		_, token := RegisterTestUser(t, "addr_default")

		addressReq := map[string]string{
			"line_one":        "42 MG Road",
			"city":            "Bengaluru",
			"state":           "Karnataka",
			"postal_code":     "560001",
			"country":         "India",
			"recipient_name":  "测试收件人",
			"recipient_phone": "9876543210",
		}

		resp := PostJSON(t, BaseURL+"/addresses", addressReq, token)
		require.Equal(t, 0, resp.Code, "创建地址失败: %s", resp.Message)

		var data AddressData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.True(t, data.IsDefault, "首个地址应为默认地址")

		// 第二个地址不应是默认
		addressReq["line_one"] = "7 Park Street"
		addressReq["city"] = "Kolkata"
		addressReq["postal_code"] = "700016"
		resp2 := PostJSON(t, BaseURL+"/addresses", addressReq, token)
		require.Equal(t, 0, resp2.Code)

		var data2 AddressData
		err = json.Unmarshal(resp2.Data, &data2)
		require.NoError(t, err)
		assert.False(t, data2.IsDefault, "第二个地址不应是默认地址")
	})

	t.Run("多字段非法时一次性全部报告", func(t *testing.T) {
		_, token := RegisterTestUser(t, "addr_invalid")

		// line_one为空 + postal_code非数字 + country为空
		addressReq := map[string]string{
			"line_one":    "",
			"city":        "Mumbai",
			"postal_code": "ABC123",
			"country":     "",
		}

		resp := PostJSON(t, BaseURL+"/addresses", addressReq, token)
		assert.Equal(t, 40902, resp.Code, "字段校验失败应返回地址校验错误码")

		var fields map[string]string
		err := json.Unmarshal(resp.Data, &fields)
		require.NoError(t, err, "data应携带字段→原因映射")

		assert.Contains(t, fields, "line_one")
		assert.Contains(t, fields, "postal_code")
		assert.Contains(t, fields, "country")
	})

	t.Run("未登录无法创建地址", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/addresses", map[string]string{}, "")
		assert.Equal(t, 40100, resp.Code)
	})
}

// TestListAddresses 测试地址列表
func TestListAddresses(t *testing.T) {
	RequireServer(t)

	t.Run("只返回自己的地址", func(t *testing.T) {
		_, tokenA := RegisterTestUser(t, "addr_list_a")
		_, tokenB := RegisterTestUser(t, "addr_list_b")

		CreateTestAddress(t, tokenA)

		resp := GetJSON(t, BaseURL+"/addresses", tokenB)
		require.Equal(t, 0, resp.Code)

		var data AddressListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Zero(t, data.Total, "新用户的地址列表应为空")
	})
}
