package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListBooks 测试图书列表与搜索
func TestListBooks(t *testing.T) {
	RequireServer(t)

	t.Run("图书列表公开可访问", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")
		require.Equal(t, 0, resp.Code, "图书列表查询失败: %s", resp.Message)

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, len(data.List), data.Total, "total应等于列表长度")
	})

	t.Run("按书名搜索", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?title=zzz_no_such_title_zzz", "")
		require.Equal(t, 0, resp.Code)

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Zero(t, data.Total, "不存在的关键词应返回空列表")
	})

	t.Run("图书不存在应返回404错误码", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/999999999", "")
		assert.Equal(t, 40402, resp.Code)
	})

	t.Run("非数字ID应返回参数错误", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/abc", "")
		assert.Equal(t, 40901, resp.Code)
	})
}

// TestUploadBooksPermission 测试目录上传的权限守卫
func TestUploadBooksPermission(t *testing.T) {
	RequireServer(t)

	t.Run("未登录无法上传", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books/upload", map[string]string{}, "")
		assert.Equal(t, 40100, resp.Code)
	})

	t.Run("普通用户无法上传", func(t *testing.T) {
		_, token := RegisterTestUser(t, "upload_forbidden")
		resp := PostJSON(t, BaseURL+"/books/upload", map[string]string{}, token)
		assert.Equal(t, 40104, resp.Code, "USER角色上传目录应被拒绝")
	})
}
