package database

import (
	"Weave/config"
	"Weave/models"
	"Weave/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接，并建好查询依赖的全部表和索引。
// 索引缺失属于配置错误，在这里直接 Fatal，不让查询路径在运行时踩到。
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}

// Migrate 六张表 + 读路径索引，全部由模型上的 gorm tag 声明
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Topic{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
}
