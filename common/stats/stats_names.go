package stats

/*
This file defines all the metrics an ice Registry collects. As new metrics are added please follow this pattern.
The Registry scopes every name under "ice".
*/

const (
	/************************* Instance cache metrics **************************/
	/*
		the number of resolutions answered from the singleton cache, including
		those that waited for another goroutine to build the singleton
	*/
	IceInstanceCacheHitCounter = "instanceCacheHitCounter"

	/*
		the number of resolutions that had to build their value (includes
		dynamic and unbound types, which are never cached). A TypeBinding
		counts once, not again for its target.
	*/
	IceInstanceCacheMissCounter = "instanceCacheMissCounter"

	/*
		the number of singletons currently cached
	*/
	IceInstanceCacheSizeGauge = "instanceCacheSizeGauge"

	/*
		the number of times ClearCache was called
	*/
	IceCacheClearCounter = "cacheClearCounter"

	/************************* Construction metrics **************************/
	/*
		the number of values produced by a factory or a constructor
	*/
	IceConstructedCounter = "constructedCounter"

	/*
		the number of resolutions that returned an error
	*/
	IceResolveErrCounter = "resolveErrCounter"

	/*
		the number of Injectable hooks run
	*/
	IceInjectHookCounter = "injectHookCounter"

	/*
		how long factories and constructors take (includes the ones that errored)
	*/
	IceConstructLatency_ms = "constructLatency_ms"

	/************************* Module metrics **************************/
	/*
		the number of modules merged into the registry
	*/
	IceModuleMergeCounter = "moduleMergeCounter"

	/*
		the number of bindings in the registry's root module
	*/
	IceBindingCountGauge = "bindingCountGauge"

	/*
		the number of registries held by the process-wide pool
	*/
	IcePooledRegistryGauge = "pooledRegistryGauge"
)
