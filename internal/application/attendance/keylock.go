package attendance

import "sync"

// keyedMutex serializa las escrituras que comparten clave (empleado, fecha);
// claves distintas no se bloquean entre sí. Las entradas se retiran del mapa
// cuando nadie las espera, así el mapa no crece con el histórico de fechas.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	waiters int
}

// lock adquiere el candado de la clave y devuelve su función de liberación.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyLock)
	}
	l := k.locks[key]
	if l == nil {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.waiters++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.waiters--
		if l.waiters == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
