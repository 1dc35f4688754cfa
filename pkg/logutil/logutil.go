package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

// 定义日志级别
const (
	DEBUG = iota // 0
	INFO         // 1
	WARN         // 2
	ERROR        // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]int{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

var (
	logger       *log.Logger
	logFile      *os.File
	mu           sync.Mutex
	currentLevel = INFO // 默认日志级别
)

// Level 让 cobra 的 VarP 可以直接绑定日志级别(实现 pflag.Value)
type Level int

var _ pflag.Value = (*Level)(nil)

func (l *Level) String() string {
	for name, v := range LOG_LEVELS {
		if v == int(*l) {
			return name
		}
	}
	return fmt.Sprintf("%d", int(*l))
}

func (l *Level) Set(val string) error {
	v, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(val))]
	if !ok {
		return fmt.Errorf("无效的日志级别: %s", val)
	}
	*l = Level(v)
	return nil
}

func (l *Level) Type() string {
	return "level"
}

// InitLogger 初始化日志，允许指定输出目标（stdout、stderr 或 文件）
// 可以重复调用，后一次覆盖前一次
func InitLogger(output string, level int) error {
	mu.Lock()
	defer mu.Unlock()

	var w *os.File
	switch output {
	case "", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		var err error
		// 以追加模式打开日志文件，不会覆盖已有内容
		w, err = os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
	}

	closeLocked()
	logFile = w
	logger = log.New(w, "", log.LstdFlags)
	currentLevel = level
	return nil
}

// SetOutput 测试里把日志重定向到 buffer
func SetOutput(w io.Writer, level int) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = log.New(w, "", 0)
	currentLevel = level
}

// 设置日志级别
func SetLogLevel(level int) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

func enabled(level int) bool {
	mu.Lock()
	defer mu.Unlock()
	return level >= currentLevel
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
// depth 是到真正调用者的栈深度
func logMessage(depth, level int, msg string, args ...any) {
	if !enabled(level) { // 值越小打印得越多
		return
	}

	mu.Lock()
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags) // 默认输出到控制台
	}
	l := logger
	mu.Unlock()

	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		file = "???"
	}

	l.Printf("[%s:%d] %s", filepath.Base(file), line, fmt.Sprintf(msg, args...))
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(2, INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(2, WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，附带调用堆栈
func Error(msg string, args ...any) {
	size := 1024 // 初始缓冲区大小
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈里可能有 %，作为参数传进去
			logMessage(2, ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(2, DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile != nil && logFile != os.Stdout && logFile != os.Stderr {
		f := logFile
		logFile = nil
		return f.Close()
	}
	logFile = nil
	return nil
}
