// Package legacy mantiene la compatibilidad con llamadas escritas contra esquemas anteriores
// del API (nombres en indonesio: nama_user, nohp, jk...). Cada esquema es una tabla explícita
// y versionada de campos; la misma tabla sirve en ambas direcciones.
package legacy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownField un campo que ninguna tabla declara: señal de que el esquema cambió.
var ErrUnknownField = errors.New("campo sin mapeo")

// Direction sentido de la conversión.
type Direction int

const (
	ToCurrent Direction = iota // legacy → actual
	ToLegacy                   // actual → legacy
)

// FieldMapping relaciona un campo legacy con su nombre actual.
// Un lado vacío significa que el campo no tiene contraparte y se descarta en esa dirección.
type FieldMapping struct {
	Legacy  string
	Current string
}

// Schema tabla versionada de un recurso.
type Schema struct {
	Name    string
	Version int
	Fields  []FieldMapping
}

func (s Schema) String() string { return fmt.Sprintf("%s/v%d", s.Name, s.Version) }

// Validate comprueba que ningún nombre aparezca dos veces en el mismo lado.
func (s Schema) Validate() error {
	legacy := map[string]bool{}
	current := map[string]bool{}
	for _, f := range s.Fields {
		if f.Legacy == "" && f.Current == "" {
			return fmt.Errorf("%s: entrada vacía", s)
		}
		if f.Legacy != "" {
			if legacy[f.Legacy] {
				return fmt.Errorf("%s: campo legacy %q duplicado", s, f.Legacy)
			}
			legacy[f.Legacy] = true
		}
		if f.Current != "" {
			if current[f.Current] {
				return fmt.Errorf("%s: campo actual %q duplicado", s, f.Current)
			}
			current[f.Current] = true
		}
	}
	return nil
}

// ToCurrent renombra las claves legacy de in a sus nombres actuales.
func (s Schema) ToCurrent(in map[string]any) (map[string]any, error) {
	return s.rename(in, ToCurrent)
}

// ToLegacy renombra las claves actuales de in a sus nombres legacy.
func (s Schema) ToLegacy(in map[string]any) (map[string]any, error) {
	return s.rename(in, ToLegacy)
}

func (s Schema) rename(in map[string]any, dir Direction) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for k, v := range in {
		f, ok := s.lookup(k, dir)
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", s, k, ErrUnknownField)
		}
		target := f.Current
		if dir == ToLegacy {
			target = f.Legacy
		}
		if target == "" {
			continue
		}
		out[target] = v
	}
	return out, nil
}

func (s Schema) lookup(key string, dir Direction) (FieldMapping, bool) {
	for _, f := range s.Fields {
		if (dir == ToCurrent && f.Legacy == key) || (dir == ToLegacy && f.Current == key) {
			return f, true
		}
	}
	return FieldMapping{}, false
}

// Convert pasa in por JSON, renombra las claves según schema y decodifica el resultado en out.
// Los campos omitidos por omitempty en in no aparecen en out (útil para updates parciales).
func Convert(schema Schema, in, out any, dir Direction) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: serializar: %w", schema, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("%s: se esperaba un objeto: %w", schema, err)
	}
	renamed, err := schema.rename(fields, dir)
	if err != nil {
		return err
	}
	raw, err = json.Marshal(renamed)
	if err != nil {
		return fmt.Errorf("%s: serializar resultado: %w", schema, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decodificar resultado: %w", schema, err)
	}
	return nil
}
