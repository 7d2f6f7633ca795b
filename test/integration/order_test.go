package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateOrderValidation 测试下单的校验顺序
// 校验顺序:支付方式 → 数量 → 库存 → 地址归属
func TestCreateOrderValidation(t *testing.T) {
	RequireServer(t)

	t.Run("支付方式非法优先报告", func(t *testing.T) {
		_, token := RegisterTestUser(t, "order_bad_mode")

		// 支付方式和数量同时非法时,先报告支付方式
		orderReq := map[string]interface{}{
			"book_id":      1,
			"address_id":   1,
			"quantity":     -1,
			"payment_mode": "BITCOIN",
		}

		resp := PostJSON(t, BaseURL+"/orders", orderReq, token)
		assert.Equal(t, 40002, resp.Code, "非法支付方式应优先于数量校验")
	})

	t.Run("数量小于1应失败", func(t *testing.T) {
		_, token := RegisterTestUser(t, "order_bad_qty")

		orderReq := map[string]interface{}{
			"book_id":      1,
			"address_id":   1,
			"quantity":     -2,
			"payment_mode": "COD",
		}

		resp := PostJSON(t, BaseURL+"/orders", orderReq, token)
		assert.Equal(t, 40010, resp.Code, "数量小于1应返回对应错误码")
	})

	t.Run("支付方式不区分大小写", func(t *testing.T) {
		_, token := RegisterTestUser(t, "order_mode_case")

		// 支付方式合法(小写cod),图书不存在 → 错误应是图书不存在而非支付方式
		orderReq := map[string]interface{}{
			"book_id":      999999999,
			"address_id":   1,
			"quantity":     1,
			"payment_mode": "cod",
		}

		resp := PostJSON(t, BaseURL+"/orders", orderReq, token)
		assert.Equal(t, 40402, resp.Code, "小写cod应通过支付方式校验")
	})

	t.Run("他人地址无法下单", func(t *testing.T) {
		// 用户A创建地址,用户B尝试用A的地址下单
		_, tokenA := RegisterTestUser(t, "order_addr_owner")
		addressID := CreateTestAddress(t, tokenA)

		_, tokenB := RegisterTestUser(t, "order_addr_thief")

		// 先查一本在售图书;目录为空时跳过
		listResp := GetJSON(t, BaseURL+"/books", "")
		require.Equal(t, 0, listResp.Code)
		var books BookListData
		require.NoError(t, json.Unmarshal(listResp.Data, &books))

		var bookID uint
		for _, b := range books.List {
			if b.BooksCount >= 1 {
				bookID = b.ID
				break
			}
		}
		if bookID == 0 {
			t.Skip("目录中没有有库存的图书,跳过地址归属校验测试")
		}

		orderReq := map[string]interface{}{
			"book_id":      bookID,
			"address_id":   addressID,
			"quantity":     1,
			"payment_mode": "COD",
		}

		resp := PostJSON(t, BaseURL+"/orders", orderReq, tokenB)
		assert.Equal(t, 40011, resp.Code, "使用他人地址下单应被拒绝")
	})

	t.Run("未登录无法下单", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{}, "")
		assert.Equal(t, 40100, resp.Code)
	})
}

// TestListOrdersPermission 测试管理端订单列表的权限守卫
func TestListOrdersPermission(t *testing.T) {
	RequireServer(t)

	t.Run("普通用户无权查询全部订单", func(t *testing.T) {
		_, token := RegisterTestUser(t, "orders_forbidden")
		resp := GetJSON(t, BaseURL+"/admin/orders", token)
		assert.Equal(t, 40104, resp.Code)
	})

	t.Run("我的订单列表可访问", func(t *testing.T) {
		_, token := RegisterTestUser(t, "orders_mine")
		resp := GetJSON(t, BaseURL+"/orders", token)
		assert.Equal(t, 0, resp.Code, "新用户查询自己的订单应成功(空列表)")
	})
}

// TestValidateCard 测试信用卡字段校验接口
func TestValidateCard(t *testing.T) {
	RequireServer(t)

	t.Run("合法卡信息校验通过", func(t *testing.T) {
		_, token := RegisterTestUser(t, "card_ok")

		cardReq := map[string]interface{}{
			"card_number":  "4111111111111111",
			"cvv":          "123",
			"holder_name":  "ALICE W",
			"expiry_month": 12,
			"expiry_year":  2030,
		}

		resp := PostJSON(t, BaseURL+"/payments/validate-card", cardReq, token)
		assert.Equal(t, 0, resp.Code, "合法卡信息应校验通过: %s", resp.Message)
	})

	t.Run("卡号位数不足应失败", func(t *testing.T) {
		_, token := RegisterTestUser(t, "card_short")

		cardReq := map[string]interface{}{
			"card_number":  "411111111111",
			"cvv":          "123",
			"holder_name":  "ALICE W",
			"expiry_month": 12,
			"expiry_year":  2030,
		}

		resp := PostJSON(t, BaseURL+"/payments/validate-card", cardReq, token)
		assert.Equal(t, 40012, resp.Code)
	})

	t.Run("过期卡应失败", func(t *testing.T) {
		_, token := RegisterTestUser(t, "card_expired")

		cardReq := map[string]interface{}{
			"card_number":  "4111111111111111",
			"cvv":          "123",
			"holder_name":  "ALICE W",
			"expiry_month": 1,
			"expiry_year":  2020,
		}

		resp := PostJSON(t, BaseURL+"/payments/validate-card", cardReq, token)
		assert.Equal(t, 40012, resp.Code)
	})
}
