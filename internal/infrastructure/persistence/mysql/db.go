package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&AddressModel{},
		&OrderModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Role      string         `gorm:"size:10;not null;default:USER;comment:角色(USER/ADMIN)"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储最小货币单位(避免浮点数精度问题)
// 2. ISBN/ISBN13使用指针:列可空,空字符串不参与唯一索引冲突
// 3. 书名加索引,支持列表排序与模糊搜索
type BookModel struct {
	ID                      uint           `gorm:"primaryKey"`
	Title                   string         `gorm:"index;size:200;not null;comment:书名"`
	AuthorName              string         `gorm:"size:100;not null;comment:作者"`
	Price                   int64          `gorm:"not null;comment:价格(最小货币单位)"`
	Currency                string         `gorm:"size:3;not null;default:INR;comment:货币代码"`
	ImageURL                string         `gorm:"size:500;comment:封面图URL"`
	SmallImageURL           string         `gorm:"size:500;comment:缩略图URL"`
	BooksCount              int            `gorm:"default:0;comment:库存数量"`
	ISBN                    *string        `gorm:"uniqueIndex;size:20;comment:ISBN-10"`
	ISBN13                  *string        `gorm:"uniqueIndex;size:20;comment:ISBN-13"`
	OriginalPublicationYear int            `gorm:"comment:原版出版年份"`
	OriginalTitle           string         `gorm:"size:200;comment:原版书名"`
	LanguageCode            string         `gorm:"size:10;comment:语言代码"`
	AverageRating           float64        `gorm:"comment:平均评分"`
	CreatedAt               time.Time      `gorm:"comment:创建时间"`
	UpdatedAt               time.Time      `gorm:"comment:更新时间"`
	DeletedAt               gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AddressModel GORM收货地址模型
type AddressModel struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index;not null;comment:归属用户ID"`
	LineOne        string    `gorm:"size:200;not null;comment:地址行1"`
	LineTwo        string    `gorm:"size:200;comment:地址行2"`
	City           string    `gorm:"size:100;not null;comment:城市"`
	State          string    `gorm:"size:100;comment:省/州"`
	PostalCode     string    `gorm:"size:20;not null;comment:邮编"`
	Country        string    `gorm:"size:100;not null;comment:国家"`
	RecipientName  string    `gorm:"size:100;comment:收件人姓名"`
	RecipientPhone string    `gorm:"size:20;comment:收件人电话"`
	IsDefault      bool      `gorm:"default:false;comment:是否默认地址"`
	CreatedAt      time.Time `gorm:"comment:创建时间"`
	UpdatedAt      time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AddressModel) TableName() string {
	return "addresses"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 订单创建后不再变更,没有状态列
// 2. OrderDate加索引,管理端按时间范围查询
type OrderModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null;comment:买家用户ID"`
	BookID      uint      `gorm:"index;not null;comment:图书ID"`
	AddressID   uint      `gorm:"not null;comment:收货地址ID"`
	Quantity    int       `gorm:"not null;comment:购买数量"`
	PaymentMode string    `gorm:"size:20;not null;comment:支付方式"`
	OrderDate   time.Time `gorm:"index;not null;comment:下单时间"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}
