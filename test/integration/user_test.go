package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserRegister 测试用户注册功能
func TestUserRegister(t *testing.T) {
	RequireServer(t)

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("normal_user")
		registerReq := map[string]string{
			"email":    email,
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data RegisterData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "用户ID应该大于0")
		assert.Equal(t, email, data.Email, "返回的邮箱应该与请求一致")
		assert.Equal(t, "USER", data.Role, "新用户默认角色应为USER")
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("duplicate_user")
		registerReq := map[string]string{
			"email":    email,
			"password": "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		resp2 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 40003, resp2.Code, "重复邮箱应返回邮箱已存在")
	})

	t.Run("密码缺少数字应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"email":    GenerateTestEmail("weak_pwd"),
			"password": "OnlyLetters",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 40014, resp.Code, "纯字母密码应被拒绝")
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"email":    "not-an-email",
			"password": "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 40901, resp.Code, "非法邮箱应在参数绑定阶段被拒绝")
	})
}

// TestUserLogin 测试用户登录功能
func TestUserLogin(t *testing.T) {
	RequireServer(t)

	t.Run("正常登录", func(t *testing.T) {
		_, token := RegisterTestUser(t, "login_ok")
		assert.NotEmpty(t, token, "登录应返回Access Token")
	})

	t.Run("密码错误应失败", func(t *testing.T) {
		email, _ := RegisterTestUser(t, "login_bad_pwd")

		loginReq := map[string]string{
			"email":    email,
			"password": "Wrong1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.Equal(t, 40103, resp.Code, "密码错误应返回对应错误码")
	})
}

// TestUpdateRolePermission 测试角色变更的权限守卫
func TestUpdateRolePermission(t *testing.T) {
	RequireServer(t)

	t.Run("普通用户无权变更角色", func(t *testing.T) {
		email, token := RegisterTestUser(t, "role_forbidden")

		roleReq := map[string]string{
			"email": email,
			"role":  "ADMIN",
		}

		resp := PutJSON(t, BaseURL+"/admin/users/role", roleReq, token)
		assert.Equal(t, 40104, resp.Code, "USER角色访问管理端接口应被拒绝")
	})

	t.Run("未登录无法变更角色", func(t *testing.T) {
		roleReq := map[string]string{
			"email": "someone@test.com",
			"role":  "ADMIN",
		}

		resp := PutJSON(t, BaseURL+"/admin/users/role", roleReq, "")
		assert.Equal(t, 40100, resp.Code, "未登录应返回请先登录")
	})
}
