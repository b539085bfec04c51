package registry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/motion"
	"github.com/nfrund/funnel/internal/pubsub"
	"github.com/nfrund/funnel/internal/rendering"
)

// Service keys shared between the server kernel and the modules.
var (
	ContentStoreKey = Key[*content.Store]("content.store")
	MotionConfigKey = Key[motion.Config]("motion.config")
	PublisherKey    = Key[pubsub.Publisher]("pubsub.publisher")
	SubscriberKey   = Key[pubsub.Subscriber]("pubsub.subscriber")
	RendererKey     = Key[rendering.Renderer]("rendering.renderer")

	MetricsRegistererKey = Key[prometheus.Registerer]("metrics.registerer")
)
