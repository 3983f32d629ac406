package httpapi

// Result 与小程序前端约定一致的响应外壳
// - code: 0 成功，非 0 失败
// - message: "success" 或错误描述
// - data: 任意业务数据
type Result[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

const (
	ResultSuccess = 0
	ResultError   = 1
	// ResultInvalid 参数校验失败（HTTP 400 同时返回）
	ResultInvalid = 400
	// ResultNotFound 对象不存在（HTTP 404 同时返回）
	ResultNotFound = 404
)

func Ok[T any](data T) Result[T] {
	return Result[T]{Code: ResultSuccess, Message: "success", Data: data}
}

func Fail(message string) Result[any] {
	return Result[any]{Code: ResultError, Message: message, Data: nil}
}

func FailWithCode(code int, message string) Result[any] {
	return Result[any]{Code: code, Message: message, Data: nil}
}
