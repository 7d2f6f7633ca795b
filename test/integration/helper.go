package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 集成测试使用真实的数据库和Redis,验证完整的API流程
// (Handler → UseCase → Service → Repository → Database)
//
// 运行方式:
//   先启动依赖环境和服务,再执行 go test -v ./test/integration/...
//   服务未启动时所有测试自动跳过

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// RequireServer 服务未运行时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AddressData 地址响应数据
type AddressData struct {
	ID         uint   `json:"id"`
	LineOne    string `json:"line_one"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

// AddressListData 地址列表响应数据
type AddressListData struct {
	List  []AddressData `json:"list"`
	Total int           `json:"total"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List  []BookData `json:"list"`
	Total int        `json:"total"`
}

// BookData 图书响应数据
type BookData struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	BooksCount   int    `json:"books_count"`
	ISBN13       string `json:"isbn13"`
}

// OrderData 下单响应数据
type OrderData struct {
	OrderID     uint   `json:"order_id"`
	Quantity    int    `json:"quantity"`
	PaymentMode string `json:"payment_mode"`
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	t.Helper()
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	return do(t, req, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	t.Helper()
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	return do(t, req, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	return do(t, req, token)
}

func do(t *testing.T, req *http.Request, token string) *Response {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳确保重复运行时不冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册测试用户并返回Token
func RegisterTestUser(t *testing.T, prefix string) (email string, token string) {
	t.Helper()
	email = GenerateTestEmail(prefix)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// CreateTestAddress 为用户创建测试地址并返回地址ID
func CreateTestAddress(t *testing.T, token string) uint {
	t.Helper()
	addressReq := map[string]string{
		"line_one":        "221B Baker Street",
		"city":            "Mumbai",
		"state":           "Maharashtra",
		"postal_code":     "400001",
		"country":         "India",
		"recipient_name":  "测试收件人",
		"recipient_phone": "9876543210",
	}

	resp := PostJSON(t, BaseURL+"/addresses", addressReq, token)
	require.Equal(t, 0, resp.Code, "创建地址失败: %s", resp.Message)

	var data AddressData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析地址响应失败")

	return data.ID
}
