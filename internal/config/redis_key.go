package config

type RedisKeyStruct struct{}

func NewRedisKeyStruct() *RedisKeyStruct {
	return &RedisKeyStruct{}
}

// ActiveSessionsKey returns the sorted-set key holding in-progress session ids
// scored by their last-activity Unix timestamp. The reaper scans this set.
func (r *RedisKeyStruct) ActiveSessionsKey() string {
	return "sessions:active"
}

var RedisKey = NewRedisKeyStruct()
