package msg

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"kma-forecast/pkg/log"
)

//go:embed messages.yml
var defaultMessages []byte

var (
	mu       sync.RWMutex
	messages = make(map[string]string)
)

// init loads the embedded message catalog
func init() {
	if err := load(bytes.NewReader(defaultMessages), ""); err != nil {
		log.Errorf("Fail to read embedded messages: %v", err)
	}
}

// Init overlays the catalog with messages read from a YAML file.
func Init(filepath string) error {
	return load(nil, filepath)
}

func load(reader *bytes.Reader, filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	var err error
	if reader != nil {
		err = v.ReadConfig(reader)
	} else {
		v.SetConfigFile(filepath)
		err = v.ReadInConfig()
	}
	if err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Debugf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns a msg and format
func GetMessage(key string, args ...interface{}) string {
	mu.RLock()
	msg, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		var argStr string

		if arg == nil {
			argStr = ""
		} else if err, ok := arg.(error); ok {
			argStr = err.Error()
		} else if isPrimitive(arg) {
			argStr = primitiveToString(arg)
		} else if s, ok := arg.(fmt.Stringer); ok {
			argStr = s.String()
		} else {
			jsonBytes, err := json.Marshal(arg)
			if err != nil {
				argStr = fmt.Sprintf("%v", arg)
			} else {
				argStr = string(jsonBytes)
			}
		}

		msg = strings.ReplaceAll(msg, placeholder, argStr)
	}

	return msg
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString converts a primitive value to string using strconv
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
