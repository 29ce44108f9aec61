package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

func decodeJSON(r io.Reader) ([]Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []Value
	for dec.More() {
		v, err := jsonValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrInvalidDocument, err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}

func jsonValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			arr := NewArray()
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(v)
			}
			return arr, closeDelim(dec)
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(kt.(string), v)
			}
			return obj, closeDelim(dec)
		}
		return nil, fmt.Errorf("unexpected %v", t)
	case string:
		return String(t), nil
	case json.Number:
		return jsonNumber(t)
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	return err
}

func jsonNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, ok := new(big.Int).SetString(s, 10); ok {
			return integer(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, err
	}
	// Overflow saturates to ±Infinity.
	return Number(f), nil
}
