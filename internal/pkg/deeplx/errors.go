package deeplx

import "fmt"

// HTTPError 翻译后端返回非 200 状态码
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("translation backend returned http %d: %s", e.Status, e.Body)
}

// LogicalError 后端返回 200 但 code 不是 200
type LogicalError struct {
	Code int64
	Body string
}

func (e *LogicalError) Error() string {
	return fmt.Sprintf("translation backend returned code %d: %s", e.Code, e.Body)
}
