// 指示: miu200521358
package logging

import (
	"strings"
	"sync"
)

// DEFAULT_MESSAGE_BUFFER_CAPACITY はMessageBufferが保持する既定の最大行数。
const DEFAULT_MESSAGE_BUFFER_CAPACITY = 1000

// MessageBuffer は出力済みログ行を直近 capacity 行まで保持する。
type MessageBuffer struct {
	mu       sync.Mutex
	lines    []string
	start    int
	capacity int
}

// NewMessageBuffer は既定容量のMessageBufferを生成する。
func NewMessageBuffer() *MessageBuffer {
	return NewMessageBufferWithCapacity(DEFAULT_MESSAGE_BUFFER_CAPACITY)
}

// NewMessageBufferWithCapacity は容量を指定してMessageBufferを生成する。1 未満は 1 とみなす。
func NewMessageBufferWithCapacity(capacity int) *MessageBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageBuffer{capacity: capacity}
}

// Write はログ出力を行単位で保持する。容量を超えた分は古い行から捨てる。
func (b *MessageBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		b.push(strings.TrimSpace(line))
	}
	return len(p), nil
}

// push は1行を追加する。満杯の場合は最古の行を上書きする。
func (b *MessageBuffer) push(line string) {
	if len(b.lines) < b.capacity {
		b.lines = append(b.lines, line)
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % b.capacity
}

// Lines は保持している行を古い順に複製して返す。
func (b *MessageBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]string, 0, len(b.lines))
	lines = append(lines, b.lines[b.start:]...)
	lines = append(lines, b.lines[:b.start]...)
	return lines
}

// Capacity は保持できる最大行数を返す。
func (b *MessageBuffer) Capacity() int {
	return b.capacity
}

// Clear は保持している行を破棄する。
func (b *MessageBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
	b.start = 0
}
