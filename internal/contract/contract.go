// Package contract проверяет, что JSON-тело запроса структурно соответствует
// одной из именованных схем API. Реестр схем фиксирован, компилируется один раз
// при старте и после этого только читается.
package contract

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

const baseURL = "mem://contracts/"

// Имена контрактов, на которые ссылаются маршруты
const (
	LoginForm             = "LoginForm"
	BoardSetting          = "BoardSetting"
	ChallengeAnswer       = "ChallengeAnswer"
	PostUploadWithoutFile = "PostUploadWithoutFile"
	Sticky                = "Sticky"
	User                  = "User"
	Number                = "number"
	Boolean               = "boolean"
)

var ErrUnknownContract = errors.New("unknown contract")

// Registry — скомпилированный набор схем
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// Load компилирует встроенные схемы
func Load() (*Registry, error) {
	ents, err := schemaFiles.ReadDir("schemas")
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	var names []string
	for _, e := range ents {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		b, err := schemaFiles.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, err
		}
		if err := compiler.AddResource(baseURL+e.Name(), bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("contract %s: %w", e.Name(), err)
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)

	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		s, err := compiler.Compile(baseURL + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", name, err)
		}
		r.schemas[name] = s
	}
	return r, nil
}

// MustLoad — Load, паникующий при ошибке компиляции
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// Names — имена всех контрактов реестра
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Validate сериализует v в JSON и проверяет именно эту сериализацию
func (r *Registry) Validate(name string, v any) (bool, error) {
	s, ok := r.schemas[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownContract, name)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		// funcs, channels, NaN and cycles have no JSON form
		return false, nil
	}
	return check(s, raw), nil
}

// ValidateJSON проверяет сырое тело запроса
func (r *Registry) ValidateJSON(name string, raw []byte) (bool, error) {
	s, ok := r.schemas[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownContract, name)
	}
	return check(s, raw), nil
}

// Checker связывает маршрут с контрактом. Отсутствующее имя — ошибка программы, паника при сборке роутера.
func (r *Registry) Checker(name string) func(raw []byte) bool {
	s, ok := r.schemas[name]
	if !ok {
		panic(fmt.Sprintf("contract: %q is not registered", name))
	}
	return func(raw []byte) bool { return check(s, raw) }
}

func check(s *jsonschema.Schema, raw []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}
	// exactly one JSON value
	if _, err := dec.Token(); err != io.EOF {
		return false
	}
	return s.Validate(v) == nil
}
