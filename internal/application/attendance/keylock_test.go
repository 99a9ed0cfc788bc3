package attendance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializaPorClave(t *testing.T) {
	var km keyedMutex
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.lock("1/2026-08-20")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

// El mapa de candados no debe crecer con el histórico de claves: al quedar
// libres se retiran.
func TestKeyedMutex_LimpiaClavesLibres(t *testing.T) {
	var km keyedMutex
	keys := []string{"1/2026-08-18", "1/2026-08-19", "2/2026-08-18"}

	var wg sync.WaitGroup
	for _, k := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			unlock := km.lock(k)
			unlock()
		}(k)
	}
	wg.Wait()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}

func TestKeyedMutex_ClavesDistintasNoSeBloquean(t *testing.T) {
	var km keyedMutex

	unlockA := km.lock("1/2026-08-20")
	// Con la clave A tomada, la clave B debe adquirirse sin esperar.
	done := make(chan struct{})
	go func() {
		unlockB := km.lock("2/2026-08-20")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}
