package data

import (
	"context"
	"fmt"

	"moviecatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

// rankingRepo keeps two sorted sets keyed by movie title: the average
// rating under key and the review count under key+":count".
type rankingRepo struct {
	data *Data
	log  *log.Helper
}

// NewRankingRepo creates the redis backed rating leaderboard
func NewRankingRepo(data *Data, logger log.Logger) biz.RankingRepo {
	return &rankingRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *rankingRepo) countKey() string {
	return r.data.rankingKey + ":count"
}

func (r *rankingRepo) Refresh(ctx context.Context, avg *biz.MovieAverage) error {
	if r.data.rdb == nil {
		return nil
	}

	pipe := r.data.rdb.TxPipeline()
	pipe.ZAdd(ctx, r.data.rankingKey, redis.Z{Score: avg.Average, Member: avg.Title})
	pipe.ZAdd(ctx, r.countKey(), redis.Z{Score: float64(avg.Count), Member: avg.Title})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update ranking: %w", err)
	}
	r.log.Debugf("ranking updated for movie: %s", avg.Title)
	return nil
}

func (r *rankingRepo) Remove(ctx context.Context, title string) error {
	if r.data.rdb == nil {
		return nil
	}

	pipe := r.data.rdb.TxPipeline()
	pipe.ZRem(ctx, r.data.rankingKey, title)
	pipe.ZRem(ctx, r.countKey(), title)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove ranking: %w", err)
	}
	return nil
}

// Rebuild replaces both sorted sets in one MULTI/EXEC.
func (r *rankingRepo) Rebuild(ctx context.Context, averages []*biz.MovieAverage) error {
	if r.data.rdb == nil {
		return biz.ErrRankingUnavailable
	}

	pipe := r.data.rdb.TxPipeline()
	pipe.Del(ctx, r.data.rankingKey, r.countKey())
	for _, avg := range averages {
		pipe.ZAdd(ctx, r.data.rankingKey, redis.Z{Score: avg.Average, Member: avg.Title})
		pipe.ZAdd(ctx, r.countKey(), redis.Z{Score: float64(avg.Count), Member: avg.Title})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild ranking: %w", err)
	}
	r.log.Infof("ranking rebuilt with %d movies", len(averages))
	return nil
}

func (r *rankingRepo) Top(ctx context.Context, limit int) ([]*biz.MovieAverage, error) {
	if r.data.rdb == nil {
		return nil, biz.ErrRankingUnavailable
	}

	zs, err := r.data.rdb.ZRevRangeWithScores(ctx, r.data.rankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}
	if len(zs) == 0 {
		return []*biz.MovieAverage{}, nil
	}

	titles := make([]string, 0, len(zs))
	for _, z := range zs {
		titles = append(titles, fmt.Sprint(z.Member))
	}
	counts, err := r.data.rdb.ZMScore(ctx, r.countKey(), titles...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking counts: %w", err)
	}

	top := make([]*biz.MovieAverage, 0, len(zs))
	for i, z := range zs {
		avg := &biz.MovieAverage{Title: titles[i], Average: z.Score}
		if i < len(counts) {
			avg.Count = int32(counts[i])
		}
		top = append(top, avg)
	}
	return top, nil
}
