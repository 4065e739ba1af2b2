package cfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Session *SessionCfg
	Log     *LogCfg
	Meal    *MealCfg
}

type SessionCfg struct {
	DefaultCustomer string // Имя покупателя, если ввод отменён
	DefaultDate     string // Дата, если ввод отменён
}

type LogCfg struct {
	Level  string
	Format string // console или json
}

type MealCfg struct {
	TipRate decimal.Decimal
	TaxRate decimal.Decimal
}

// fileCfg: структура YAML-файла. Все поля необязательные.
type fileCfg struct {
	Session struct {
		DefaultCustomer string `yaml:"default_customer"`
		DefaultDate     string `yaml:"default_date"`
	} `yaml:"session"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Meal struct {
		TipRate string `yaml:"tip_rate"`
		TaxRate string `yaml:"tax_rate"`
	} `yaml:"meal"`
}

const (
	defaultCustomer = "none"
	defaultDate     = "January 1, 2020"
	defaultLevel    = "warn"
	defaultFormat   = logger.FormatConsole
	defaultTipRate  = "0.18"
	defaultTaxRate  = "0.07"
)

// Load собирает конфигурацию: значения по умолчанию, затем YAML-файл (path или CONFIG_PATH),
// затем .env, затем переменные окружения процесса.
func Load(log logger.Logger, path string) (*Config, error) {
	file, err := loadFile(log, path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// .env необязателен, уже заданные переменные окружения он не перезаписывает
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env not loaded: %v", err)
	}

	logCfg, err := loadLogCfg(file)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	meal, err := loadMealCfg(log, file)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Session: loadSessionCfg(file),
		Log:     logCfg,
		Meal:    meal,
	}, nil
}

func loadFile(log logger.Logger, path string) (*fileCfg, error) {
	var file fileCfg

	if path == "" {
		path = getEnv("CONFIG_PATH")
	}
	if path == "" {
		return &file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	log.Debugf("config file loaded: %s", path)
	return &file, nil
}

func loadSessionCfg(file *fileCfg) *SessionCfg {
	return &SessionCfg{
		DefaultCustomer: getEnvOrDefault("CART_DEFAULT_CUSTOMER", firstNonEmpty(file.Session.DefaultCustomer, defaultCustomer)),
		DefaultDate:     getEnvOrDefault("CART_DEFAULT_DATE", firstNonEmpty(file.Session.DefaultDate, defaultDate)),
	}
}

func loadLogCfg(file *fileCfg) (*LogCfg, error) {
	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", firstNonEmpty(file.Log.Format, defaultFormat)))
	if format != logger.FormatConsole && format != logger.FormatJSON {
		return nil, e.Wrap("LOG_FORMAT", e.ErrIncorrectEnvVariable)
	}

	return &LogCfg{
		Level:  getEnvOrDefault("LOG_LEVEL", firstNonEmpty(file.Log.Level, defaultLevel)),
		Format: format,
	}, nil
}

func loadMealCfg(log logger.Logger, file *fileCfg) (*MealCfg, error) {
	tip, err := parseRateEnv("MEAL_TIP_RATE", firstNonEmpty(file.Meal.TipRate, defaultTipRate))
	if err != nil {
		log.Errorf(err, "invalid MEAL_TIP_RATE")
		return nil, e.Wrap("MEAL_TIP_RATE", err)
	}

	tax, err := parseRateEnv("MEAL_TAX_RATE", firstNonEmpty(file.Meal.TaxRate, defaultTaxRate))
	if err != nil {
		log.Errorf(err, "invalid MEAL_TAX_RATE")
		return nil, e.Wrap("MEAL_TAX_RATE", err)
	}

	return &MealCfg{
		TipRate: tip,
		TaxRate: tax,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseRateEnv считывает неотрицательную долю (0.18) или возвращает значение по умолчанию.
func parseRateEnv(key, defaultValue string) (decimal.Decimal, error) {
	v := getEnvOrDefault(key, defaultValue)

	rate, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil || rate.IsNegative() {
		return decimal.Zero, e.ErrIncorrectEnvVariable
	}

	return rate, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
