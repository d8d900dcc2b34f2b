package openai

import "encoding/json"

// MaxFallbackBytes bounds the serialized fallback produced by ExtractText for
// unrecognized inputs, so oversized payloads never reach the message transport.
const MaxFallbackBytes = 800

// ExtractText best-efforts a plain-text reply out of a loosely-typed model
// response. It recognizes plain strings, *Response values, and generic maps in
// the Responses API shape. It never fails: unrecognized shapes degrade to a
// bounded JSON serialization, and anything unserializable yields "".
func ExtractText(v interface{}) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *Response:
		if val == nil {
			return ""
		}
		if s := val.OutputText(); s != "" {
			return s
		}
		return fallbackString(val)
	case Response:
		if s := val.OutputText(); s != "" {
			return s
		}
		return fallbackString(val)
	case map[string]interface{}:
		if s, ok := val["output_text"].(string); ok && s != "" {
			return s
		}
		if s := textFromOutputArray(val["output"]); s != "" {
			return s
		}
		return fallbackString(val)
	default:
		return fallbackString(v)
	}
}

// textFromOutputArray digs output[0].content[0].text out of a generic map.
func textFromOutputArray(v interface{}) string {
	output, ok := v.([]interface{})
	if !ok || len(output) == 0 {
		return ""
	}
	first, ok := output[0].(map[string]interface{})
	if !ok {
		return ""
	}
	content, ok := first["content"].([]interface{})
	if !ok || len(content) == 0 {
		return ""
	}
	block, ok := content[0].(map[string]interface{})
	if !ok {
		return ""
	}
	text, _ := block["text"].(string)
	return text
}

func fallbackString(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	if len(raw) > MaxFallbackBytes {
		raw = raw[:MaxFallbackBytes]
	}
	return string(raw)
}
