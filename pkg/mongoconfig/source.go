package mongoconfig

import (
	"fmt"
	"reflect"
	"strings"
)

// Application is a web application object that carries its own configuration
// and an extension registry other components can stash shared handles in.
type Application interface {
	Config() map[string]any
	Name() string
	Extensions() map[string]any
	SetExtensions(map[string]any)
}

// settingsProvider is satisfied by layered config stores such as *viper.Viper.
type settingsProvider interface {
	AllSettings() map[string]any
}

// Extract flattens source into a RawConfig.
//
// Applications contribute their Config map and Name. Maps and settings
// providers are copied entry by entry. Any other value is treated as a
// generic object: the exported, non-zero fields of a struct become entries.
// The returned appName is the application's name, or AppName() otherwise.
func Extract(source any) (cfg RawConfig, isApp bool, appName string) {
	if app, ok := source.(Application); ok {
		cfg = make(RawConfig)
		for k, v := range app.Config() {
			cfg[k] = v
		}
		return cfg, true, app.Name()
	}

	appName = AppName()

	if sp, ok := source.(settingsProvider); ok {
		cfg = make(RawConfig)
		for k, v := range sp.AllSettings() {
			cfg[strings.ToUpper(k)] = v
		}
		return cfg, false, appName
	}

	val := indirect(reflect.ValueOf(source))
	switch val.Kind() {
	case reflect.Map:
		return fromMap(val), false, appName
	case reflect.Struct:
		cfg = make(RawConfig)
		fromStruct(val, cfg)
		return cfg, false, appName
	default:
		return make(RawConfig), false, appName
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func fromMap(val reflect.Value) RawConfig {
	cfg := make(RawConfig, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		cfg[mapKey(iter.Key())] = iter.Value().Interface()
	}
	return cfg
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

func fromStruct(val reflect.Value, cfg RawConfig) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fv := val.Field(i)
		if field.Anonymous {
			if embedded := indirect(fv); embedded.Kind() == reflect.Struct {
				fromStruct(embedded, cfg)
				continue
			}
		}
		if !field.IsExported() || fv.IsZero() {
			continue
		}
		key, ok := fieldKey(field)
		if !ok {
			continue
		}
		cfg[key] = fv.Interface()
	}
}

// fieldKey picks the config key for a struct field: the mongo tag, the name
// part of the env tag, or the field name. A "-" name excludes the field.
func fieldKey(field reflect.StructField) (string, bool) {
	for _, tag := range []string{"mongo", "env"} {
		if v, ok := field.Tag.Lookup(tag); ok {
			name, _, _ := strings.Cut(v, ",")
			if name == "-" {
				return "", false
			}
			if name != "" {
				return name, true
			}
		}
	}
	return field.Name, true
}
