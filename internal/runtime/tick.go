package runtime

import "time"

func sleepTick() { time.Sleep(DefaultPollInterval) }
