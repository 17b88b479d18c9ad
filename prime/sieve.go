package prime

// smallPrimeBound is the exclusive upper bound for the trial-division
// sieve: every prime below this bound is checked as a cheap pre-filter
// before paying for a full Miller-Rabin round. 1000 is a conventional
// choice for this library's target bit lengths, large enough to reject
// most composites in O(1) divisions.
const smallPrimeBound = 1000

// smallPrimes holds every prime below smallPrimeBound, ascending.
var smallPrimes []uint32

func init() {
	sieve := make([]bool, smallPrimeBound)
	for i := 2; i < smallPrimeBound; i++ {
		if sieve[i] {
			continue
		}
		smallPrimes = append(smallPrimes, uint32(i))
		for j := i * i; j < smallPrimeBound; j += i {
			sieve[j] = true
		}
	}
}
