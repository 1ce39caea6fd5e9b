package batch

import "strings"

// ExpandMessage はテンプレート中の $name / ${name} を vars の値で置換します
// 未知のプレースホルダはそのまま残し、$$ は $ ひとつに展開します
// （os.Expand は未知の変数を空文字に潰してしまうため使えません）
func ExpandMessage(tmpl string, vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}

		// 末尾の $ はそのまま
		if i+1 >= len(tmpl) {
			b.WriteByte('$')
			break
		}

		next := tmpl[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(tmpl[i+2:], '}')
			if end < 0 {
				b.WriteString(tmpl[i:])
				return b.String()
			}
			name := tmpl[i+2 : i+2+end]
			if value, ok := vars[name]; ok && isIdent(name) {
				b.WriteString(value)
			} else {
				b.WriteString(tmpl[i : i+2+end+1])
			}
			i += 2 + end + 1
		default:
			name := identAt(tmpl[i+1:])
			if name == "" {
				b.WriteByte('$')
				i++
				continue
			}
			if value, ok := vars[name]; ok {
				b.WriteString(value)
			} else {
				b.WriteString(tmpl[i : i+1+len(name)])
			}
			i += 1 + len(name)
		}
	}

	return b.String()
}

// identAt は先頭から識別子として読める最長の部分を返します
func identAt(s string) string {
	n := 0
	for n < len(s) && isIdentByte(s[n], n == 0) {
		n++
	}
	return s[:n]
}

func isIdent(s string) bool {
	return s != "" && identAt(s) == s
}

func isIdentByte(c byte, first bool) bool {
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return !first && c >= '0' && c <= '9'
}
